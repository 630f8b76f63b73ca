package errors_test

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/ducttape-items/internal/errors"
)

type ErrorsTestSuite struct {
	suite.Suite
}

func TestErrorsSuite(t *testing.T) {
	suite.Run(t, new(ErrorsTestSuite))
}

func (s *ErrorsTestSuite) TestErrorString() {
	testCases := []struct {
		name     string
		err      *errors.Error
		expected string
	}{
		{
			name:     "plain",
			err:      errors.NotFound("slot 3 is empty"),
			expected: "NOT_FOUND: slot 3 is empty",
		},
		{
			name:     "formatted",
			err:      errors.UnknownAttributeKindf("no %s entries", "Reach"),
			expected: "UNKNOWN_ATTRIBUTE_KIND: no Reach entries",
		},
		{
			name:     "with cause",
			err:      errors.Wrap(stderrors.New("disk gone"), "failed to read mask"),
			expected: "INTERNAL: failed to read mask: disk gone",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.expected, tc.err.Error())
		})
	}
}

func (s *ErrorsTestSuite) TestWrapKeepsCodeAndCopiesMeta() {
	base := errors.NotFound("no such item").WithMeta("name", "sword")

	wrapped := errors.Wrapf(base, "failed to add %s", "sword")
	s.Equal(errors.CodeNotFound, wrapped.Code)
	s.Equal("sword", wrapped.Meta["name"])

	wrapped.WithMeta("qty", 2)
	s.NotContains(base.Meta, "qty")
	s.ErrorIs(wrapped, base)
}

func (s *ErrorsTestSuite) TestWrapWithCode() {
	cause := errors.NotFound("template.png missing")
	err := errors.WrapWithCodef(cause, errors.CodeTextureComposite, "failed to render %s", "spear")

	s.True(errors.IsTextureComposite(err))
	s.False(errors.IsNotFound(err))
	s.Same(cause, stderrors.Unwrap(err))
}

func (s *ErrorsTestSuite) TestWrapNil() {
	s.Nil(errors.Wrap(nil, "nothing"))
	s.Nil(errors.WrapWithCode(nil, errors.CodeInternal, "nothing"))
}

func (s *ErrorsTestSuite) TestIsMatchesByCode() {
	sentinel := errors.ResourceExhausted("collection is full")
	err := errors.Wrap(errors.ResourceExhausted("no free slot in inventory"), "failed to add rock")

	s.True(errors.Is(err, sentinel))
	s.False(errors.Is(err, errors.NotFound("x")))
	s.False(errors.Is(stderrors.New("plain"), sentinel))
}

func (s *ErrorsTestSuite) TestSentinelsSharingACodeStayApart() {
	slotMissing := errors.Sentinel(errors.CodeNotFound, "no item in slot")
	nameMissing := errors.Sentinel(errors.CodeNotFound, "item not registered")
	err := errors.Wrapf(nameMissing, "item %q not registered", "sword")

	s.True(errors.Is(err, nameMissing))
	s.False(errors.Is(err, slotMissing))
	s.False(errors.Is(slotMissing, nameMissing))
	s.True(errors.IsNotFound(err))

	// a plain coded target still matches by code
	s.True(errors.Is(err, errors.NotFound("anything missing")))
}

func (s *ErrorsTestSuite) TestCodeHelpers() {
	testCases := []struct {
		name  string
		err   error
		check func(error) bool
	}{
		{"not found", errors.NotFoundf("item %s", "x"), errors.IsNotFound},
		{"invalid argument", errors.InvalidArgumentf("bad %d", 1), errors.IsInvalidArgument},
		{"internal", errors.Internal("boom"), errors.IsInternal},
		{"uncoded is internal", stderrors.New("boom"), errors.IsInternal},
		{"resource exhausted", errors.ResourceExhausted("full"), errors.IsResourceExhausted},
		{"failed precondition", errors.FailedPrecondition("no engine"), errors.IsFailedPrecondition},
		{"template load", errors.TemplateLoadf("bad toml"), errors.IsTemplateLoad},
		{"texture composite", errors.TextureCompositef("no mask"), errors.IsTextureComposite},
		{"unknown kind", errors.UnknownAttributeKindf("Reach"), errors.IsUnknownAttributeKind},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.True(tc.check(tc.err))
			s.False(tc.check(nil))
		})
	}
}

func (s *ErrorsTestSuite) TestGetCode() {
	s.Equal(errors.Code(""), errors.GetCode(nil))
	s.Equal(errors.CodeOutOfRange, errors.GetCode(errors.OutOfRangef("%d < %d", 1, 2)))
	s.Equal(errors.CodeInternal, errors.GetCode(stderrors.New("plain")))
}
