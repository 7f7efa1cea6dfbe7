/*******************************************************************************
*
* Copyright 2026 The rcc authors.
*
* Licensed under the GNU General Public License, version 3 or later.
*
*******************************************************************************/

// Package diagnostics holds the structured error/warning/note data model
// produced by the lexer, parser and emitters. Rendering diagnostics to a
// terminal or log is a caller concern; this package only accumulates them.
package diagnostics

import "fmt"

// Kind classifies a Diagnostic.
type Kind int

const (
	KindError Kind = iota
	KindWarning
	KindNote
)

func (k Kind) String() string {
	switch k {
	case KindError:
		return "error"
	case KindWarning:
		return "warning"
	case KindNote:
		return "note"
	default:
		return "unknown"
	}
}

// Span locates a diagnostic in the source text.
type Span struct {
	Line    int
	ByteLow int
	ByteHigh int
}

// Reason is a closed set of structured diagnostic causes, per spec §7's
// taxonomy. Reasons carry enough structure for a renderer to localize
// messages; rcc itself only ever formats them through Error() for logs.
type Reason string

const (
	ReasonUnterminatedString       Reason = "unterminated_string"
	ReasonUnterminatedRawData      Reason = "unterminated_raw_data"
	ReasonUnexpectedEOF            Reason = "unexpected_eof"
	ReasonExpectedToken            Reason = "expected_token"
	ReasonExpressionTooDeep        Reason = "expression_too_deep"
	ReasonFontRequiresOrdinal      Reason = "font_requires_ordinal"
	ReasonStringAsResourceType     Reason = "string_as_resource_type"
	ReasonRawDataForbidden         Reason = "raw_data_forbidden"
	ReasonInvalidAcceleratorChar   Reason = "invalid_accelerator_char"
	ReasonInvalidAccelerator       Reason = "invalid_accelerator"
	ReasonDuplicateStringID        Reason = "duplicate_string_id"
	ReasonTooManyControls          Reason = "too_many_controls"
	ReasonEmptyMenu                Reason = "empty_menu"
	ReasonInvalidCodePage          Reason = "invalid_code_page"
	ReasonUnknownCodePage          Reason = "unknown_code_page"
	ReasonCodePageInIncludedFile   Reason = "code_page_in_included_file"
	ReasonFileNotFound             Reason = "file_not_found"
	ReasonUnrecognizedFileHeader   Reason = "unrecognized_file_header"
	ReasonPaletteExceedsFile       Reason = "palette_exceeds_file"
	ReasonStyleMiscompile          Reason = "style_miscompile"
	ReasonVersionInfoLengthMixed   Reason = "versioninfo_length_mixed"
	ReasonVersionInfoPaddingQuirk  Reason = "versioninfo_padding_quirk"
	ReasonLanguageLongSuffix       Reason = "language_long_suffix"
	ReasonUnaryPlusUnsupported     Reason = "unary_plus_unsupported"
)

// Diagnostic is a single structured error, warning, or note.
type Diagnostic struct {
	Kind    Kind
	Reason  Reason
	Span    Span
	Message string
}

func (d Diagnostic) Error() string {
	return fmt.Sprintf("%s:%d: %s: %s", "rc", d.Span.Line, d.Kind, d.Message)
}

// Collector is a wrapper around []Diagnostic that simplifies code where
// multiple diagnostics can accumulate and need to be reported together
// instead of aborting on the first one.
type Collector struct {
	Diagnostics []Diagnostic
}

// Add appends a diagnostic built from the given fields.
func (c *Collector) Add(kind Kind, reason Reason, span Span, format string, args ...interface{}) {
	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}
	c.Diagnostics = append(c.Diagnostics, Diagnostic{Kind: kind, Reason: reason, Span: span, Message: msg})
}

// Errorf is shorthand for Add(KindError, reason, span, format, args...).
func (c *Collector) Errorf(reason Reason, span Span, format string, args ...interface{}) {
	c.Add(KindError, reason, span, format, args...)
}

// Warnf is shorthand for Add(KindWarning, reason, span, format, args...).
func (c *Collector) Warnf(reason Reason, span Span, format string, args ...interface{}) {
	c.Add(KindWarning, reason, span, format, args...)
}

// Notef is shorthand for Add(KindNote, reason, span, format, args...).
func (c *Collector) Notef(reason Reason, span Span, format string, args ...interface{}) {
	c.Add(KindNote, reason, span, format, args...)
}

// HasErrors reports whether any diagnostic of KindError was collected.
func (c *Collector) HasErrors() bool {
	for _, d := range c.Diagnostics {
		if d.Kind == KindError {
			return true
		}
	}
	return false
}

// Errors extracts the KindError diagnostics as plain errors, for callers
// that only care about hard failures (mirrors holo-build's ErrorCollector
// which only ever held errors).
func (c *Collector) Errors() []error {
	var errs []error
	for _, d := range c.Diagnostics {
		if d.Kind == KindError {
			errs = append(errs, d)
		}
	}
	return errs
}
