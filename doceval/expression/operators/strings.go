package operators

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/krew-solutions/doceval-go/doceval/result"
	"github.com/krew-solutions/doceval-go/doceval/value"
)

func evalStrConcat(args []result.Result) result.Result {
	if len(args) == 0 {
		return result.Err(result.InvalidArgument("str_concat expects at least one operand"))
	}
	if err := firstError(args); err != nil {
		return result.Err(err)
	}
	for _, a := range args {
		if !a.IsNullish() && a.Value().Kind() != value.KindString {
			return result.Err(result.TypeMismatch("str_concat expects strings, got %s", a.Value().Kind()))
		}
	}
	if anyNullish(args) {
		return result.Null()
	}
	var b strings.Builder
	for _, a := range args {
		b.WriteString(a.Value().Str())
	}
	return result.Of(value.String(b.String()))
}

func unaryString(op Operator, fn func(string) value.Value) Func {
	return func(args []result.Result) result.Result {
		if len(args) != 1 {
			return wrongArity(op, len(args), 1)
		}
		a := args[0]
		switch {
		case a.IsError():
			return result.Err(a.Err())
		case a.IsNullish():
			return result.Null()
		}
		if a.Value().Kind() != value.KindString {
			return result.Err(result.TypeMismatch("%s expects a string, got %s", op, a.Value().Kind()))
		}
		return result.Of(fn(a.Value().Str()))
	}
}

func binaryString(op Operator, fn func(subject, probe string) value.Value) Func {
	return func(args []result.Result) result.Result {
		if len(args) != 2 {
			return wrongArity(op, len(args), 2)
		}
		if err := firstError(args); err != nil {
			return result.Err(err)
		}
		for _, a := range args {
			if !a.IsNullish() && a.Value().Kind() != value.KindString {
				return result.Err(result.TypeMismatch("%s expects strings, got %s", op, a.Value().Kind()))
			}
		}
		if anyNullish(args) {
			return result.Null()
		}
		return result.Of(fn(args[0].Value().Str(), args[1].Value().Str()))
	}
}

func regexOp(op Operator, fullMatch bool) Func {
	return func(args []result.Result) result.Result {
		if len(args) != 2 {
			return wrongArity(op, len(args), 2)
		}
		if err := firstError(args); err != nil {
			return result.Err(err)
		}
		for _, a := range args {
			if !a.IsNullish() && a.Value().Kind() != value.KindString {
				return result.Err(result.TypeMismatch("%s expects strings, got %s", op, a.Value().Kind()))
			}
		}
		if anyNullish(args) {
			return result.Null()
		}
		pattern := args[1].Value().Str()
		if fullMatch {
			pattern = "^(?:" + pattern + ")$"
		}
		re, err := regexp.Compile(pattern)
		if err != nil {
			return result.Err(result.InvalidArgument("%s: bad pattern %q", op, args[1].Value().Str()))
		}
		return result.BooleanOf(re.MatchString(args[0].Value().Str()))
	}
}

// evalLike translates a SQL LIKE pattern (% and _ wildcards) into an
// anchored regular expression.
func evalLike(args []result.Result) result.Result {
	fn := binaryString(OperatorLike, func(subject, pattern string) value.Value {
		var b strings.Builder
		b.WriteString("^")
		for _, r := range pattern {
			switch r {
			case '%':
				b.WriteString(".*")
			case '_':
				b.WriteString(".")
			default:
				b.WriteString(regexp.QuoteMeta(string(r)))
			}
		}
		b.WriteString("$")
		re := regexp.MustCompile(b.String())
		return value.Boolean(re.MatchString(subject))
	})
	return fn(args)
}

// byte_length accepts strings and byte values; char_length is strings only.
func evalByteLength(args []result.Result) result.Result {
	if len(args) != 1 {
		return wrongArity(OperatorByteLength, len(args), 1)
	}
	a := args[0]
	switch {
	case a.IsError():
		return result.Err(a.Err())
	case a.IsNullish():
		return result.Null()
	}
	switch a.Value().Kind() {
	case value.KindString:
		return result.Of(value.Integer(int64(len(a.Value().Str()))))
	case value.KindBytes:
		return result.Of(value.Integer(int64(len(a.Value().Bytes()))))
	}
	return result.Err(result.TypeMismatch("byte_length expects a string or bytes, got %s", a.Value().Kind()))
}

// substr(subject, position, length) counts runes, not bytes, with a
// zero-based position clamped at the end of the subject.
func evalSubstr(args []result.Result) result.Result {
	if len(args) != 3 {
		return wrongArity(OperatorSubstr, len(args), 3)
	}
	if err := firstError(args); err != nil {
		return result.Err(err)
	}
	for i, a := range args[1:] {
		if !a.IsNullish() && a.Value().Kind() != value.KindInteger {
			return result.Err(result.TypeMismatch(
				"substr operand %d must be an integer, got %s", i+2, a.Value().Kind()))
		}
	}
	if !args[0].IsNullish() && args[0].Value().Kind() != value.KindString {
		return result.Err(result.TypeMismatch("substr expects a string, got %s", args[0].Value().Kind()))
	}
	if anyNullish(args) {
		return result.Null()
	}
	position, length := args[1].Value().Integer(), args[2].Value().Integer()
	if position < 0 || length < 0 {
		return result.Err(result.InvalidArgument("substr position and length must be non-negative"))
	}
	runes := []rune(args[0].Value().Str())
	if position >= int64(len(runes)) {
		return result.Of(value.String(""))
	}
	end := position + length
	if end > int64(len(runes)) {
		end = int64(len(runes))
	}
	return result.Of(value.String(string(runes[position:end])))
}

func charLength(s string) value.Value {
	return value.Integer(int64(utf8.RuneCountInString(s)))
}
