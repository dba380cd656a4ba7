package validator_test

import (
	"encoding/json"
	"mime/multipart"
	"net/textproto"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/ruleval/pkg/validator"
)

// check runs a single rule against value and reports whether it passed.
func check(t *testing.T, v *validator.Validator, rule string, value any) bool {
	t.Helper()
	res, err := v.Validate(validator.RuleSet{validator.Field("field", rule)}, map[string]any{"field": value})
	require.NoError(t, err)
	return res.Success
}

type namedFile string

func (f namedFile) Name() string { return string(f) }

func ptr[T any](v T) *T { return &v }

func TestRequiredRule(t *testing.T) {
	t.Parallel()
	v := validator.New()

	passing := map[string]any{
		"string":         "Sendy",
		"padded string":  "  x  ",
		"zero int":       0,
		"false":          false,
		"empty slice":    []string{},
		"string pointer": ptr("value"),
	}
	for name, value := range passing {
		t.Run("pass/"+name, func(t *testing.T) {
			t.Parallel()
			assert.True(t, check(t, v, "required", value))
		})
	}

	failing := map[string]any{
		"nil":                  nil,
		"empty string":         "",
		"whitespace":           " \t\n ",
		"nil pointer":          (*string)(nil),
		"pointer to empty":     ptr(""),
		"pointer to blank str": ptr("   "),
	}
	for name, value := range failing {
		t.Run("fail/"+name, func(t *testing.T) {
			t.Parallel()
			assert.False(t, check(t, v, "required", value))
		})
	}
}

func TestNumericRule(t *testing.T) {
	t.Parallel()
	v := validator.New()

	for _, value := range []any{"123", "0", "-5", "+3.14", ".5", "007", 42, int64(-7), 3.5, uint8(9)} {
		assert.True(t, check(t, v, "numeric", value), "should be numeric: %#v", value)
	}
	for _, value := range []any{"hi there123", "", nil, "12a", "1.", "1e5", " 12", "1,000", true} {
		assert.False(t, check(t, v, "numeric", value), "should not be numeric: %#v", value)
	}

	t.Run("json decoded floats", func(t *testing.T) {
		t.Parallel()
		var obj map[string]any
		require.NoError(t, json.Unmarshal([]byte(`{"amount":0.00001,"price":12.5,"big":1e20}`), &obj))

		res, err := v.Validate(validator.RuleSet{
			validator.Field("amount", "numeric"),
			validator.Field("price", "numeric"),
			validator.Field("big", "numeric"),
		}, obj)
		require.NoError(t, err)
		assert.True(t, res.Success, res.Messages.List)
	})

	t.Run("float32", func(t *testing.T) {
		t.Parallel()
		assert.True(t, check(t, v, "numeric", float32(0.00025)))
	})

	t.Run("exponent outside plain range", func(t *testing.T) {
		t.Parallel()
		assert.False(t, check(t, v, "numeric", 1e-7))
		assert.False(t, check(t, v, "numeric", 1e21))
	})
}

func TestValueRenderingOfFloats(t *testing.T) {
	t.Parallel()
	v := validator.New()
	v.AddRule("never", func(any, validator.ParsedRule, string, map[string]any) bool { return false })
	v.SetMessage("never", "%{propertyName} got %{value}")

	res, err := v.Validate(validator.RuleSet{validator.Field("amount", "never")}, map[string]any{"amount": 0.00001})
	require.NoError(t, err)
	assert.Equal(t, []string{"Amount got 0.00001"}, res.Messages.List)
}

func TestEmailRule(t *testing.T) {
	t.Parallel()
	v := validator.New()

	valid := []any{
		"a@b.com",
		"test@example.com",
		"user.name@domain.co.uk",
		"user+tag@example.org",
		"1234567890@example.com",
		"email@example-one.com",
		ptr("ptr@example.com"),
	}
	for _, value := range valid {
		assert.True(t, check(t, v, "email", value), "should be valid: %v", value)
	}

	invalid := []any{
		"not-an-email",
		"",
		"   ",
		nil,
		"plainaddress",
		"@missingdomain.com",
		"missing@.com",
		"missing@domain",
		"missing@domain.",
		"spaces @domain.com",
		"email@domain..com",
		"Name <a@b.com>",
		42,
	}
	for _, value := range invalid {
		assert.False(t, check(t, v, "email", value), "should be invalid: %v", value)
	}
}

func TestImageRule(t *testing.T) {
	t.Parallel()
	v := validator.New()

	headerWithType := &multipart.FileHeader{
		Filename: "blob",
		Header:   textproto.MIMEHeader{"Content-Type": {"image/png"}},
	}

	valid := []any{
		"photo.jpg",
		"PHOTO.PNG",
		"dir/sub/pic.webp",
		" spaced.gif ",
		&multipart.FileHeader{Filename: "avatar.jpeg"},
		headerWithType,
		namedFile("scan.tiff"),
	}
	for _, value := range valid {
		assert.True(t, check(t, v, "image", value), "should be image: %v", value)
	}

	invalid := []any{
		"doc.pdf",
		"jpg",
		"archive.jpg.zip",
		"",
		nil,
		42,
		(*multipart.FileHeader)(nil),
		&multipart.FileHeader{Filename: "notes.txt"},
		namedFile("movie.mp4"),
	}
	for _, value := range invalid {
		assert.False(t, check(t, v, "image", value), "should not be image: %v", value)
	}
}

func TestImageRule_CustomExtensions(t *testing.T) {
	t.Parallel()
	v := validator.New(validator.WithImageExtensions(".PDF", "raw"))

	assert.True(t, check(t, v, "image", "scan.pdf"))
	assert.True(t, check(t, v, "image", "shot.RAW"))
	assert.False(t, check(t, v, "image", "photo.jpg"))
}

func TestBuiltinMessages(t *testing.T) {
	t.Parallel()
	v := validator.New()

	res, err := v.Validate(validator.RuleSet{
		validator.Field("fullName", "required"),
		validator.Field("zipCode", "numeric"),
		validator.Field("officeEmail", "email"),
		validator.Field("profile_picture", "image"),
	}, map[string]any{"zipCode": "x", "officeEmail": "x", "profile_picture": "x.txt"})
	require.NoError(t, err)

	assert.Equal(t, []string{
		"Full Name is required",
		"Zip Code must be numeric",
		"Office Email must be a valid email",
		"Profile Picture must be an image",
	}, res.Messages.List)
}
