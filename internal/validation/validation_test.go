package validation

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type ValidationTestSuite struct {
	suite.Suite
	validator *validator.Validate
}

func (s *ValidationTestSuite) SetupTest() {
	s.validator = validator.New()
	s.Require().NoError(Register(s.validator, "group", ValidateGroup))
}

func TestValidationTestSuite(t *testing.T) {
	suite.Run(t, new(ValidationTestSuite))
}

func (s *ValidationTestSuite) TestValidateGroup() {
	type query struct {
		Group string `validate:"group"`
	}

	tests := []struct {
		name    string
		group   string
		wantErr bool
	}{
		{name: "lowercase", group: "jkt48"},
		{name: "mixed case", group: "Hinatazaka46"},
		{name: "single char", group: "a"},
		{name: "max length", group: "12345678901234567890123456789012"},
		{name: "empty", group: "", wantErr: true},
		{name: "too long", group: "123456789012345678901234567890123", wantErr: true},
		{name: "hyphen", group: "jkt-48", wantErr: true},
		{name: "space", group: "jkt 48", wantErr: true},
		{name: "non ascii", group: "日向坂46", wantErr: true},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			err := s.validator.Struct(query{Group: tt.group})
			if tt.wantErr {
				s.Require().Error(err)
			} else {
				s.Require().NoError(err)
			}
		})
	}
}

func (s *ValidationTestSuite) TestRegisterAlias() {
	RegisterAlias(s.validator, "shortgroup", "group,max=8")

	type query struct {
		Group string `validate:"shortgroup"`
	}

	s.NoError(s.validator.Struct(query{Group: "jkt48"}))
	s.Error(s.validator.Struct(query{Group: "hinatazaka46"}))
}

func (s *ValidationTestSuite) TestOptionalGroup() {
	type query struct {
		Group string `validate:"omitempty,group"`
	}

	s.NoError(s.validator.Struct(query{}))
	s.Error(s.validator.Struct(query{Group: "x!"}))
}

func (s *ValidationTestSuite) TestFormatValidationError() {
	type query struct {
		Group string `validate:"required,group"`
		Page  int    `validate:"min=1"`
	}

	err := s.validator.Struct(query{Group: "bad group"})
	s.Require().Error(err)

	formatted := FormatValidationError(err)
	s.Len(formatted, 2)
	fields := make(map[string]bool)
	for _, e := range formatted {
		fields[e.Field] = true
		s.NotEmpty(e.Message)
	}
	s.True(fields["Group"])
	s.True(fields["Page"])
}

func TestFormatValidationErrorNonValidationError(t *testing.T) {
	assert.Empty(t, FormatValidationError(assert.AnError))
	assert.Empty(t, FormatValidationError(nil))
}

func TestGroupTagRegisteredOnGin(t *testing.T) {
	assert.NoError(t, RegisterGinAlias("testgroup", "group"))
}
