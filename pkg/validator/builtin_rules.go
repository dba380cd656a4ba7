package validator

import (
	"fmt"
	"math"
	"mime/multipart"
	"net/mail"
	"path/filepath"
	"reflect"
	"regexp"
	"strconv"
	"strings"
)

// DefaultImageExtensions is the extension list used by the image rule unless
// WithImageExtensions overrides it.
var DefaultImageExtensions = []string{
	"jpg", "jpeg", "png", "gif", "webp", "svg", "bmp",
	"tif", "tiff", "ico", "heic", "heif", "avif", "jxl",
}

// Optional sign, optional integer part, optional fraction.
var numericRegex = regexp.MustCompile(`^[+-]?([0-9]*[.])?[0-9]+$`)

func registerBuiltin(v *Validator) {
	exts := normalizeExtensions(v.imageExts)

	v.predicates["required"] = func(value any, _ ParsedRule, _ string, _ map[string]any) bool {
		return isPresent(value)
	}
	v.predicates["numeric"] = func(value any, _ ParsedRule, _ string, _ map[string]any) bool {
		return numericRegex.MatchString(stringify(value))
	}
	v.predicates["email"] = func(value any, _ ParsedRule, _ string, _ map[string]any) bool {
		return isEmail(stringify(value))
	}
	v.predicates["image"] = func(value any, _ ParsedRule, _ string, _ map[string]any) bool {
		return isImage(value, exts)
	}

	for key, tmpl := range map[string]string{
		"required": "%{propertyName} is required",
		"numeric":  "%{propertyName} must be numeric",
		"email":    "%{propertyName} must be a valid email",
		"image":    "%{propertyName} must be an image",
	} {
		v.messages[key] = message{tmpl: tmpl, render: Template(tmpl)}
	}
}

// indirect dereferences pointers; nil pointers become nil.
func indirect(value any) any {
	rv := reflect.ValueOf(value)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}
	if !rv.IsValid() {
		return nil
	}
	return rv.Interface()
}

func isPresent(value any) bool {
	value = indirect(value)
	switch v := value.(type) {
	case nil:
		return false
	case string:
		return strings.TrimSpace(v) != ""
	default:
		return true
	}
}

// stringify converts a value to the string the string-based rules check.
func stringify(value any) string {
	if s, ok := value.(fmt.Stringer); ok && !isNilValue(value) {
		return s.String()
	}

	switch v := indirect(value).(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	case float64:
		return formatFloat(v, 64)
	case float32:
		return formatFloat(float64(v), 32)
	default:
		return fmt.Sprint(v)
	}
}

// formatFloat uses plain decimal notation for magnitudes in [1e-6, 1e21), so
// 0.00001 renders as "0.00001" rather than "1e-05".
func formatFloat(f float64, bitSize int) string {
	abs := math.Abs(f)
	if abs == 0 || (abs >= 1e-6 && abs < 1e21) {
		return strconv.FormatFloat(f, 'f', -1, bitSize)
	}
	return strconv.FormatFloat(f, 'g', -1, bitSize)
}

func isEmail(value string) bool {
	if strings.TrimSpace(value) == "" {
		return false
	}

	addr, err := mail.ParseAddress(value)
	if err != nil {
		return false
	}
	// Reject "Name <a@b.c>" forms; the value must be the bare address.
	if addr.Address != value {
		return false
	}

	local, domain, ok := strings.Cut(addr.Address, "@")
	if !ok || local == "" {
		return false
	}

	if !strings.Contains(domain, ".") || strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
		return false
	}
	for part := range strings.SplitSeq(domain, ".") {
		if part == "" {
			return false
		}
	}

	return true
}

type namer interface {
	Name() string
}

// isImage checks the file name extension of value. Accepted values are a file
// name string, a *multipart.FileHeader, or anything with a Name() method such
// as *os.File or fs.FileInfo.
func isImage(value any, exts map[string]bool) bool {
	var name string
	switch v := value.(type) {
	case *multipart.FileHeader:
		if v == nil {
			return false
		}
		if strings.HasPrefix(v.Header.Get("Content-Type"), "image/") {
			return true
		}
		name = v.Filename
	case namer:
		if isNilValue(v) {
			return false
		}
		name = v.Name()
	default:
		name = stringify(value)
	}

	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(strings.TrimSpace(name))), ".")
	return ext != "" && exts[ext]
}

func isNilValue(value any) bool {
	rv := reflect.ValueOf(value)
	return !rv.IsValid() || (rv.Kind() == reflect.Pointer && rv.IsNil())
}

func normalizeExtensions(exts []string) map[string]bool {
	set := make(map[string]bool, len(exts))
	for _, ext := range exts {
		ext = strings.TrimPrefix(strings.ToLower(strings.TrimSpace(ext)), ".")
		if ext != "" {
			set[ext] = true
		}
	}
	return set
}
