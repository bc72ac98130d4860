package ranges

import (
	"fmt"
	"reflect"
	"strings"
	"unicode"

	"github.com/ib-77/kotlinize/pkg/kt"
)

// Element is the set of Go types a Range can hold.
type Element interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// Kind tags the numeric or character variant of a range.
type Kind int

const (
	KindByte Kind = iota + 1
	KindShort
	KindInt
	KindLong
	KindChar
)

var kindNames = map[Kind]string{
	KindByte:  "byte",
	KindShort: "short",
	KindInt:   "int",
	KindLong:  "long",
	KindChar:  "char",
}

var kindAliases = map[string]Kind{
	"byte":  KindByte,
	"int8":  KindByte,
	"short": KindShort,
	"int16": KindShort,
	"int":   KindInt,
	"int32": KindInt,
	"long":  KindLong,
	"int64": KindLong,
	"char":  KindChar,
	"rune":  KindChar,
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind resolves a kind name such as "int" or "int32" (case-insensitive).
func ParseKind(name string) (Kind, error) {
	k, ok := kindAliases[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, fmt.Errorf("%w: %q", kt.ErrUnsupportedKind, name)
	}
	return k, nil
}

// bounds returns the inclusive value interval a kind can represent.
func (k Kind) bounds() (lo, hi int64, ok bool) {
	switch k {
	case KindByte:
		return -1 << 7, 1<<7 - 1, true
	case KindShort:
		return -1 << 15, 1<<15 - 1, true
	case KindInt:
		return -1 << 31, 1<<31 - 1, true
	case KindLong:
		return -1 << 63, 1<<63 - 1, true
	case KindChar:
		return 0, unicode.MaxRune, true
	}
	return 0, 0, false
}

// kindOf picks the integer kind matching the width of T.
func kindOf[T Element]() Kind {
	switch reflect.TypeFor[T]().Kind() {
	case reflect.Int8:
		return KindByte
	case reflect.Int16:
		return KindShort
	case reflect.Int32:
		return KindInt
	default:
		return KindLong
	}
}
