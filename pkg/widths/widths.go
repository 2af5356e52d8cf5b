package widths

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrUnsupportedWidth reports a bit width with no storage type or literal
// mapping. It is fatal for a whole generation batch.
var ErrUnsupportedWidth = errors.New("widths: unsupported bit width")

// Width is the number of bits in a generated container's storage integer.
type Width int

// Supported widths, in canonical order.
const (
	W8  Width = 8
	W16 Width = 16
	W32 Width = 32
	W64 Width = 64
)

// Placeholder is the width templates are written against.
const Placeholder = W32

// Canonical literal spellings used by templates.
const (
	CanonicalZero       = "0x00000000"
	CanonicalComplement = "0xFFFFFFFF"
	CanonicalOne        = "0x00000001"
)

// LiteralClass identifies one of the width-dependent literal kinds.
type LiteralClass int

const (
	LiteralZero LiteralClass = iota
	LiteralComplement
	LiteralOne
)

func (c LiteralClass) String() string {
	switch c {
	case LiteralZero:
		return "zero"
	case LiteralComplement:
		return "complement"
	case LiteralOne:
		return "one"
	default:
		return "literal(" + strconv.Itoa(int(c)) + ")"
	}
}

// Classes lists every literal class in table order.
func Classes() []LiteralClass {
	return []LiteralClass{LiteralZero, LiteralComplement, LiteralOne}
}

// Canonical returns the template spelling of a literal class.
func (c LiteralClass) Canonical() string {
	switch c {
	case LiteralZero:
		return CanonicalZero
	case LiteralComplement:
		return CanonicalComplement
	case LiteralOne:
		return CanonicalOne
	default:
		return ""
	}
}

type entry struct {
	storage    string
	zero       string
	complement string
	one        string
}

// Go has no typed literal suffixes, so the byte-wide "one" uses a binary
// spelling; any width-correct spelling works since the declared storage type
// carries the typing.
var table = map[Width]entry{
	W8:  {storage: "uint8", zero: "0x00", complement: "0xFF", one: "0b00000001"},
	W16: {storage: "uint16", zero: "0x0000", complement: "0xFFFF", one: "0x0001"},
	W32: {storage: "uint32", zero: "0x00000000", complement: "0xFFFFFFFF", one: "0x00000001"},
	W64: {storage: "uint64", zero: "0x0000000000000000", complement: "0xFFFFFFFFFFFFFFFF", one: "0x0000000000000001"},
}

// Supported returns the closed set of widths with a literal mapping.
func Supported() []Width {
	return []Width{W8, W16, W32, W64}
}

// Validate reports ErrUnsupportedWidth for widths outside the table.
func (w Width) Validate() error {
	if _, ok := table[w]; !ok {
		return fmt.Errorf("%w: %d", ErrUnsupportedWidth, int(w))
	}
	return nil
}

// Bytes returns the storage size in bytes.
func (w Width) Bytes() int {
	return int(w) / 8
}

func (w Width) String() string {
	return strconv.Itoa(int(w))
}

// StorageType returns the Go unsigned integer type name for the width.
func (w Width) StorageType() (string, error) {
	s, err := w.lookup()
	if err != nil {
		return "", err
	}
	return s.storage, nil
}

// ConvertMethod returns the name of the lossless conversion method generated
// for the width, e.g. ToUint16.
func (w Width) ConvertMethod() (string, error) {
	if err := w.Validate(); err != nil {
		return "", err
	}
	return "ToUint" + w.String(), nil
}

// Literal returns the width-correct spelling for a literal class.
func (w Width) Literal(class LiteralClass) (string, error) {
	s, err := w.lookup()
	if err != nil {
		return "", err
	}
	switch class {
	case LiteralZero:
		return s.zero, nil
	case LiteralComplement:
		return s.complement, nil
	case LiteralOne:
		return s.one, nil
	default:
		return "", fmt.Errorf("widths: unknown literal class %d", int(class))
	}
}

// Literals maps each canonical spelling to the width-correct one.
func (w Width) Literals() (map[string]string, error) {
	out := make(map[string]string, 3)
	for _, class := range Classes() {
		lit, err := w.Literal(class)
		if err != nil {
			return nil, err
		}
		out[class.Canonical()] = lit
	}
	return out, nil
}

func (w Width) lookup() (entry, error) {
	s, ok := table[w]
	if !ok {
		return entry{}, fmt.Errorf("%w: %d", ErrUnsupportedWidth, int(w))
	}
	return s, nil
}

// Parse converts a decimal string into a supported Width.
func Parse(raw string) (Width, error) {
	trimmed := strings.TrimSpace(raw)
	n, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedWidth, raw)
	}
	w := Width(n)
	if err := w.Validate(); err != nil {
		return 0, err
	}
	return w, nil
}

// ParseList parses a comma separated width list, e.g. "8,16,32,64".
func ParseList(raw string) ([]Width, error) {
	var out []Width
	for _, part := range strings.Split(raw, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		w, err := Parse(part)
		if err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	return out, nil
}

// ValidateList checks that the list is non-empty and every width is
// supported. Repeated widths pass: they collide on output paths, which the
// orchestrator reports as a duplicate output.
func ValidateList(list []Width) error {
	if len(list) == 0 {
		return errors.New("widths: at least one width is required")
	}
	for _, w := range list {
		if err := w.Validate(); err != nil {
			return err
		}
	}
	return nil
}
