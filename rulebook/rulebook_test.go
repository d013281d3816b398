package rulebook

import (
	"errors"
	"testing"

	"github.com/sgostarter/i/commerr"
	"github.com/sgostarter/i/l"
	"github.com/sgostarter/libgrab/grab"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type utStorage struct {
	rules   map[string]grab.GrabbingRule
	saves   int
	failErr error
}

func (s *utStorage) LoadRules() (map[string]grab.GrabbingRule, error) {
	if s.failErr != nil {
		return nil, s.failErr
	}

	m := make(map[string]grab.GrabbingRule)
	for name, rule := range s.rules {
		m[name] = rule
	}

	return m, nil
}

func (s *utStorage) SaveRule(name string, rule grab.GrabbingRule) error {
	if s.rules == nil {
		s.rules = make(map[string]grab.GrabbingRule)
	}

	s.rules[name] = rule
	s.saves++

	return nil
}

func (s *utStorage) DeleteRule(name string) error {
	delete(s.rules, name)

	return nil
}

func TestRuleBookSeedsDefaults(t *testing.T) {
	custom := grab.PalmRule.WithUnselectMode(grab.UnselectAnyReleased)
	storage := &utStorage{rules: map[string]grab.GrabbingRule{PalmRuleName: custom}}

	book, err := NewRuleBook(storage, nil, l.NewConsoleLoggerWrapper())
	require.Nil(t, err)

	assert.EqualValues(t, []string{FullGrabRuleName, PalmRuleName, PinchRuleName}, book.Names())
	assert.EqualValues(t, 2, storage.saves)

	rule, err := book.Get(PalmRuleName)
	assert.Nil(t, err)
	assert.Equal(t, custom, rule, "stored rules win over defaults")

	rule, err = book.Get(" pinch ")
	assert.Nil(t, err)
	assert.Equal(t, grab.PinchRule, rule)

	_, err = book.Get("mug")
	assert.True(t, errors.Is(err, commerr.ErrNotFound))
}

func TestRuleBookLoadFailure(t *testing.T) {
	book, err := NewRuleBook(&utStorage{failErr: commerr.ErrResourceExhausted}, nil, nil)
	assert.Nil(t, book)
	assert.True(t, errors.Is(err, commerr.ErrResourceExhausted))
}

func TestRuleBookSetDelete(t *testing.T) {
	storage := &utStorage{}

	book, err := NewRuleBook(storage, &Config{}, nil)
	require.Nil(t, err)

	mug := grab.Project(grab.MaskOf(grab.Thumb, grab.Index), grab.FullGrabRule)

	err = book.Set("mug", mug)
	assert.Nil(t, err)
	assert.Equal(t, mug, storage.rules["mug"])

	rule, err := book.Get("mug")
	assert.Nil(t, err)
	assert.Equal(t, mug, rule)

	err = book.Set(" ", mug)
	assert.True(t, errors.Is(err, commerr.ErrInvalidArgument))

	err = book.Set("a:b", mug)
	assert.True(t, errors.Is(err, commerr.ErrInvalidArgument))

	err = book.Delete(PalmRuleName)
	assert.True(t, errors.Is(err, commerr.ErrReject))

	err = book.Delete("mug")
	assert.Nil(t, err)

	_, ok := storage.rules["mug"]
	assert.False(t, ok)

	err = book.Delete("mug")
	assert.True(t, errors.Is(err, commerr.ErrNotFound))
}

func TestRuleBookProjected(t *testing.T) {
	book, err := NewRuleBook(&utStorage{}, nil, nil)
	require.Nil(t, err)

	mask := grab.MaskOf(grab.Index, grab.Middle)

	rule, err := book.Projected(PalmRuleName, mask)
	assert.Nil(t, err)
	assert.Equal(t, grab.Project(mask, grab.PalmRule), rule)

	rule, err = book.Projected(PalmRuleName, mask)
	assert.Nil(t, err)
	assert.Equal(t, grab.Project(mask, grab.PalmRule), rule)

	updated := grab.PalmRule.WithRequirement(grab.Index, grab.RequirementOptional)
	assert.Nil(t, book.Set(PalmRuleName, updated))

	rule, err = book.Projected(PalmRuleName, mask)
	assert.Nil(t, err)
	assert.Equal(t, grab.Project(mask, updated), rule, "set drops cached projections")
	assert.EqualValues(t, grab.RequirementOptional, rule.Requirement(grab.Index))

	_, err = book.Projected("mug", mask)
	assert.True(t, errors.Is(err, commerr.ErrNotFound))

	rule, err = book.Projected(PinchRuleName, grab.AllFingersMask)
	assert.Nil(t, err)
	assert.Equal(t, grab.PinchRule, rule)
}
