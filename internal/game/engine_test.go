package game

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordscramble/internal/words"
)

type fixedPicker string

func (p fixedPicker) Pick(roots []string) (string, error) {
	if len(roots) == 0 {
		return "", words.ErrWordListUnavailable
	}
	return string(p), nil
}

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	return NewEngine(Config{
		Roots:    []string{"карета"},
		Picker:   fixedPicker("карета"),
		Speller:  testSpeller(),
		Language: "ru",
		Now:      func() time.Time { return time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC) },
	})
}

func TestEngine_NewGame(t *testing.T) {
	e := newTestEngine(t)

	s, err := e.NewGame(ModeRandom)
	require.NoError(t, err)
	assert.Len(t, s.ID, 16)
	assert.Equal(t, "карета", s.Root)
	assert.Empty(t, s.Accepted)
	assert.Equal(t, 0, e.Score(s))

	_, err = e.NewGame(ModeDaily)
	assert.True(t, errors.Is(err, ErrUnknownMode))
}

func TestEngine_EmptyRootListIsFatalKind(t *testing.T) {
	e := NewEngine(Config{Speller: testSpeller(), Language: "ru"})
	_, err := e.NewGame(ModeRandom)
	require.Error(t, err)
	assert.True(t, errors.Is(err, words.ErrWordListUnavailable))
}

func TestEngine_Submit(t *testing.T) {
	e := newTestEngine(t)
	s, err := e.NewGame(ModeRandom)
	require.NoError(t, err)

	res := e.Submit(s, "  Рак ")
	assert.Equal(t, Result{Outcome: OutcomeAccepted, Word: "рак"}, res)
	assert.Equal(t, "", s.Input)

	res = e.Submit(s, "карта")
	assert.Equal(t, OutcomeAccepted, res.Outcome)
	assert.Equal(t, []string{"карта", "рак"}, s.Accepted, "most recent first")
	assert.Equal(t, 8, e.Score(s))

	res = e.Submit(s, "РАК")
	assert.Equal(t, OutcomeRejected, res.Outcome)
	assert.Equal(t, ReasonDuplicate, res.Reason)
	require.NotNil(t, res.Alert)
	assert.Equal(t, "Слово уже использовалось", res.Alert.Title)
	assert.Equal(t, "РАК", s.Input, "input kept for correction")
	assert.Equal(t, []string{"карта", "рак"}, s.Accepted)

	res = e.Submit(s, "торт")
	assert.Equal(t, ReasonNotComposable, res.Reason)
	assert.Equal(t, "Такое слово невозможно составить из 'карета'", res.Alert.Title)

	res = e.Submit(s, "карета")
	assert.Equal(t, ReasonEqualsRoot, res.Reason)
	assert.Equal(t, 8, e.Score(s))
}

func TestEngine_SubmitBlankIsNoop(t *testing.T) {
	e := newTestEngine(t)
	s, err := e.NewGame(ModeRandom)
	require.NoError(t, err)
	e.Submit(s, "рак")
	e.Submit(s, "торт")

	var notified int
	e.Observe(func(Snapshot) { notified++ })

	for _, in := range []string{"", "   ", "\n\t"} {
		res := e.Submit(s, in)
		assert.Equal(t, Result{Outcome: OutcomeIgnored}, res)
		assert.Nil(t, res.Alert)
	}
	assert.Equal(t, []string{"рак"}, s.Accepted)
	assert.Equal(t, "торт", s.Input)
	assert.Zero(t, notified)
}

func TestEngine_StartResets(t *testing.T) {
	e := newTestEngine(t)
	s, err := e.NewGame(ModeRandom)
	require.NoError(t, err)
	e.Submit(s, "рак")
	e.Submit(s, "река")
	require.Equal(t, 7, e.Score(s))

	for i := 0; i < 2; i++ {
		require.NoError(t, e.Start(s))
		assert.Empty(t, s.Accepted)
		assert.Equal(t, 0, e.Score(s))
		assert.Equal(t, "", s.Input)
	}
}

func TestEngine_Observe(t *testing.T) {
	e := newTestEngine(t)
	var got []Snapshot
	e.Observe(func(s Snapshot) { got = append(got, s) })

	s, err := e.NewGame(ModeRandom)
	require.NoError(t, err)
	e.Submit(s, "рак")
	e.Submit(s, "xx")
	e.Submit(s, "  ")

	require.Len(t, got, 3)
	assert.Equal(t, Snapshot{ID: s.ID, Mode: ModeRandom, Root: "карета", Words: []string{}, Score: 0}, got[0])
	assert.Equal(t, []string{"рак"}, got[1].Words)
	assert.Equal(t, 3, got[1].Score)
	assert.Equal(t, Snapshot{ID: s.ID, Mode: ModeRandom, Root: "карета", Words: []string{"рак"}, Input: "xx", Score: 3}, got[2])
}

func TestEngine_SubmitRejectTouchesSession(t *testing.T) {
	now := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	e := newTestEngine(t)
	e.now = func() time.Time { return now }
	s, err := e.NewGame(ModeRandom)
	require.NoError(t, err)

	now = now.Add(time.Minute)
	res := e.Submit(s, "Торт")
	assert.Equal(t, OutcomeRejected, res.Outcome)
	assert.Equal(t, "Торт", s.Input)
	assert.Equal(t, now, s.UpdatedAt)
	assert.Equal(t, now.Add(-time.Minute), s.StartedAt)
}

func TestEngine_DecomposedRootList(t *testing.T) {
	start := filepath.Join(t.TempDir(), "start.txt")
	require.NoError(t, os.WriteFile(start, []byte("вои\u0306ска\n"), 0o644))
	lists, err := words.Load(words.Options{StartFile: start})
	require.NoError(t, err)

	e := NewEngine(Config{
		Roots:    lists.Roots,
		Picker:   fixedPicker(lists.Roots[0]),
		Speller:  testSpeller(),
		Language: "ru",
	})
	s, err := e.NewGame(ModeRandom)
	require.NoError(t, err)

	tests := []struct {
		in     string
		reason Reason
	}{
		{in: "войска", reason: ReasonEqualsRoot},
		{in: "вои\u0306ска", reason: ReasonEqualsRoot},
		{in: "вой", reason: ReasonNone},
	}
	for _, tt := range tests {
		res := e.Submit(s, tt.in)
		assert.Equal(t, tt.reason, res.Reason, "%q", tt.in)
	}
	assert.Equal(t, []string{"вой"}, s.Accepted)
}

func TestEngine_DailyMode(t *testing.T) {
	e := NewEngine(Config{
		Roots:       []string{"карета", "столица"},
		Picker:      fixedPicker("карета"),
		DailyPicker: fixedPicker("столица"),
		Speller:     testSpeller(),
		Language:    "ru",
	})
	s, err := e.NewGame(ModeDaily)
	require.NoError(t, err)
	assert.Equal(t, ModeDaily, s.Mode)
	assert.Equal(t, "столица", s.Root)
}

func TestEngine_NewGameWithRoot(t *testing.T) {
	e := newTestEngine(t)
	s := e.NewGameWithRoot(" КАРЕТА ")
	assert.Equal(t, "карета", s.Root)
	assert.Equal(t, OutcomeAccepted, e.Submit(s, "рак").Outcome)
}

func TestSession_Clone(t *testing.T) {
	s := &Session{ID: "x", Accepted: []string{"рак"}}
	c := s.Clone()
	c.Accepted[0] = "река"
	assert.Equal(t, "рак", s.Accepted[0])
}
