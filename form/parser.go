package form

import (
	"errors"
	"fmt"
	"net/url"
	"reflect"
	"strings"

	v10 "github.com/go-playground/validator/v10"
	"github.com/gorilla/schema"
	"github.com/xy-planning-network/enumfield"
)

// A Parser decodes form values into a struct and validates the result.
type Parser struct {
	dec    *schema.Decoder
	valid  *v10.Validate
	fields map[string]*enumfield.Field
}

// NewParser constructs a *Parser, which applies default configuration.
func NewParser() *Parser {
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)

	v := v10.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("schema"), ",", 2)[0]
		if name == "-" {
			name = ""
		}

		return name
	})

	return &Parser{dec: dec, valid: v, fields: make(map[string]*enumfield.Field)}
}

// Register installs a "validate" struct tag named tag that passes
// when every value of the tagged field resolves to an Item of f.
//
// Tagged fields may be strings or slices of strings, Items or NullItems.
// Absent values pass; pair the tag with "required" to demand one.
func (p *Parser) Register(tag string, f *enumfield.Field) error {
	if err := p.valid.RegisterValidation(tag, validateField(f)); err != nil {
		return fmt.Errorf("%w: %s", enumfield.ErrBadConfig, err)
	}

	p.fields[tag] = f

	return nil
}

// Parse decodes values into structPtr and validates it.
//
// On failure, Parse returns ValidationErrors for every offending field.
func (p *Parser) Parse(values url.Values, structPtr any) error {
	if err := p.dec.Decode(structPtr, values); err != nil {
		return translateDecoderError(err, values)
	}

	return p.validate(structPtr)
}

// validate checks the fields on structPtr match the rules set by "validate" struct tags.
// On success, validate returns no error.
// On failure, validate translates each issue to a ValidationError,
// returning them all as ValidationErrors.
func (p *Parser) validate(structPtr any) error {
	err := p.valid.Struct(structPtr)
	if err == nil {
		return nil
	}

	var errs v10.ValidationErrors
	if !errors.As(err, &errs) {
		return fmt.Errorf("%w: %s", enumfield.ErrUnexpected, err)
	}

	var validateErrs ValidationErrors
	for _, ve := range errs {
		field := ve.Namespace()

		ns := strings.SplitN(field, ".", 2)
		if len(ns) == 2 {
			field = ns[1]
		}

		rule := ve.Tag()
		if ve.Param() != "" {
			rule += "=" + ve.Param()
		}

		var allowed []string
		if f, ok := p.fields[ve.Tag()]; ok {
			allowed = f.Enum().Values()
		}

		validateErrs = append(validateErrs, ValidationError{
			Field:   field,
			Got:     ve.Value(),
			Rule:    rule,
			Allowed: allowed,
		})
	}

	return validateErrs
}

// validateField builds a v10.Func checking a field, or each element of a slice field, against f.
func validateField(f *enumfield.Field) v10.Func {
	return func(fl v10.FieldLevel) bool {
		field := fl.Field()
		if field.Kind() != reflect.Slice {
			_, err := f.Coerce(field.Interface())
			return err == nil
		}

		for i := 0; i < field.Len(); i++ {
			if _, err := f.Coerce(field.Index(i).Interface()); err != nil {
				return false
			}
		}

		return true
	}
}

// translateDecoderError converts an error returned by *schema.Decoder into standardized errors.
// Some *schema.Decoder errors are issues with calling code;
// still some are issues with mismatches between the form values and the expected shape,
// which are reported with the submitted value taken from values.
func translateDecoderError(err error, values url.Values) error {
	var pkgErrs schema.MultiError
	if !errors.As(err, &pkgErrs) {
		return fmt.Errorf("%w: %s", enumfield.ErrUnexpected, err)
	}

	var validErrs ValidationErrors
	for _, pkgErr := range pkgErrs {
		switch err := pkgErr.(type) {
		case schema.ConversionError:
			validErrs = append(validErrs, ValidationError{
				Field: err.Key,
				// NOTE: for non-slice values, err.Index is -1.
				Got:  submitted(values, err.Key, max(0, err.Index)),
				Rule: "type=" + err.Type.String(),
			})

		case schema.UnknownKeyError:
			validErrs = append(validErrs, ValidationError{
				Field: err.Key,
				Got:   submitted(values, err.Key, 0),
				Rule:  "unknown",
			})

		default:
			return fmt.Errorf("%w: %s", enumfield.ErrUnexpected, err)
		}
	}

	return validErrs
}

// submitted is the i-th value submitted for key, or "" if there is none.
func submitted(values url.Values, key string, i int) string {
	if vs := values[key]; i < len(vs) {
		return vs[i]
	}

	return ""
}
