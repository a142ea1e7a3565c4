package service

import (
	"context"
	"testing"

	"github.com/alexanderramin/logbook/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsService_RoundingUnitDefaultIsStored(t *testing.T) {
	f := newFixture(t, "en")
	ctx := context.Background()

	unit, err := f.settings.RoundingUnit(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, unit)

	stored, err := f.store.Get(ctx, repository.KeyRoundingUnit)
	require.NoError(t, err)
	assert.Equal(t, "1", stored)
}

func TestSettingsService_RoundingUnitInvalidStoredValue(t *testing.T) {
	f := newFixture(t, "en")
	ctx := context.Background()

	require.NoError(t, f.store.Set(ctx, repository.KeyRoundingUnit, "7"))

	unit, err := f.settings.RoundingUnit(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, unit)
}

func TestSettingsService_SetRoundingUnit(t *testing.T) {
	f := newFixture(t, "en")
	ctx := context.Background()

	require.NoError(t, f.settings.SetRoundingUnit(ctx, 15))
	unit, err := f.settings.RoundingUnit(ctx)
	require.NoError(t, err)
	assert.Equal(t, 15, unit)

	err = f.settings.SetRoundingUnit(ctx, 20)
	assert.ErrorIs(t, err, ErrInvalidRoundingUnit)

	unit, err = f.settings.RoundingUnit(ctx)
	require.NoError(t, err)
	assert.Equal(t, 15, unit)
}

func TestSettingsService_ShortcutDefaults(t *testing.T) {
	ctx := context.Background()

	en := newFixture(t, "en")
	sc, err := en.settings.Shortcut(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "@work +PromotionalExams;Study", sc)

	ja := newFixture(t, "ja")
	sc, err = ja.settings.Shortcut(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "@仕事 +昇進試験;勉強", sc)

	sc, err = en.settings.Shortcut(ctx, 9)
	require.NoError(t, err)
	assert.Equal(t, "", sc)
}

func TestSettingsService_SetShortcutTrims(t *testing.T) {
	f := newFixture(t, "en")
	ctx := context.Background()

	require.NoError(t, f.settings.SetShortcut(ctx, 3, "  Meeting;Standup \n"))
	sc, err := f.settings.Shortcut(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, "Meeting;Standup", sc)
}

func TestSettingsService_ClearedShortcutStaysEmpty(t *testing.T) {
	f := newFixture(t, "en")
	ctx := context.Background()

	require.NoError(t, f.settings.SetShortcut(ctx, 1, ""))
	sc, err := f.settings.Shortcut(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "", sc)
}

func TestSettingsService_InvalidShortcutNumber(t *testing.T) {
	f := newFixture(t, "en")
	ctx := context.Background()

	for _, n := range []int{0, 10, -1} {
		_, err := f.settings.Shortcut(ctx, n)
		assert.ErrorIs(t, err, ErrInvalidShortcut, n)
		assert.ErrorIs(t, f.settings.SetShortcut(ctx, n, "x"), ErrInvalidShortcut, n)
	}
}

func TestSettingsService_Shortcuts(t *testing.T) {
	f := newFixture(t, "en")
	ctx := context.Background()

	require.NoError(t, f.settings.SetShortcut(ctx, 6, "Email"))

	all, err := f.settings.Shortcuts(ctx)
	require.NoError(t, err)
	require.Len(t, all, ShortcutCount)
	assert.Equal(t, "@private +housework;Cleaning", all[1])
	assert.Equal(t, "Email", all[5])
}

func TestSettingsService_Update(t *testing.T) {
	f := newFixture(t, "en")
	ctx := context.Background()

	var s Settings
	s.RoundingUnit = 30
	s.Shortcuts[0] = " Work "
	s.Shortcuts[8] = "^Lunch"
	require.NoError(t, f.settings.Update(ctx, s))

	unit, err := f.settings.RoundingUnit(ctx)
	require.NoError(t, err)
	assert.Equal(t, 30, unit)

	all, err := f.settings.Shortcuts(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Work", all[0])
	assert.Equal(t, "", all[1])
	assert.Equal(t, "^Lunch", all[8])
}

func TestSettingsService_UpdateRejectsInvalidUnit(t *testing.T) {
	f := newFixture(t, "en")

	err := f.settings.Update(context.Background(), Settings{RoundingUnit: 2})
	assert.ErrorIs(t, err, ErrInvalidRoundingUnit)
}
