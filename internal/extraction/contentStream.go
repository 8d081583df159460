package extraction

import (
	"bytes"
	"encoding/hex"
	"strconv"
	"strings"
	"unicode"
)

// kerning adjustments in TJ arrays below this value (thousandths of an em) read as a word break
const tjWordBreak = -200

type operand struct {
	str      string
	isString bool
	num      float64
	isNum    bool
	arr      []operand
	isArray  bool
}

// textFromContentStream walks a decoded page content stream and keeps the strings shown by
// Tj, TJ, ' and " with line breaks taken from the positioning operators.
// Glyph encodings are not resolved, bytes are read as Latin-1.
func textFromContentStream(data []byte) string {
	var out strings.Builder
	var stack []operand
	var arrays [][]operand

	push := func(op operand) {
		if len(arrays) > 0 {
			arrays[len(arrays)-1] = append(arrays[len(arrays)-1], op)
			return
		}
		stack = append(stack, op)
	}
	newline := func() {
		if out.Len() > 0 && !strings.HasSuffix(out.String(), "\n") {
			out.WriteByte('\n')
		}
	}
	space := func() {
		s := out.String()
		if len(s) > 0 && !strings.HasSuffix(s, " ") && !strings.HasSuffix(s, "\n") {
			out.WriteByte(' ')
		}
	}
	lastString := func() (string, bool) {
		for i := len(stack) - 1; i >= 0; i-- {
			if stack[i].isString {
				return stack[i].str, true
			}
		}
		return "", false
	}

	i := 0
	for i < len(data) {
		c := data[i]
		switch {
		case isPDFWhitespace(c):
			i++
		case c == '%':
			for i < len(data) && data[i] != '\n' && data[i] != '\r' {
				i++
			}
		case c == '(':
			s, next := readLiteralString(data, i+1)
			push(operand{str: s, isString: true})
			i = next
		case c == '<' && i+1 < len(data) && data[i+1] == '<':
			i += 2
		case c == '>' && i+1 < len(data) && data[i+1] == '>':
			i += 2
		case c == '<':
			end := bytes.IndexByte(data[i:], '>')
			if end < 0 {
				i = len(data)
				continue
			}
			push(operand{str: decodeHexString(data[i+1 : i+end]), isString: true})
			i += end + 1
		case c == '[':
			arrays = append(arrays, nil)
			i++
		case c == ']':
			if len(arrays) > 0 {
				arr := arrays[len(arrays)-1]
				arrays = arrays[:len(arrays)-1]
				push(operand{arr: arr, isArray: true})
			}
			i++
		case c == '/':
			j := i + 1
			for j < len(data) && !isPDFWhitespace(data[j]) && !isPDFDelimiter(data[j]) {
				j++
			}
			push(operand{})
			i = j
		case c == '+' || c == '-' || c == '.' || (c >= '0' && c <= '9'):
			j := i + 1
			for j < len(data) && (data[j] == '.' || (data[j] >= '0' && data[j] <= '9')) {
				j++
			}
			n, _ := strconv.ParseFloat(string(data[i:j]), 64)
			push(operand{num: n, isNum: true})
			i = j
		default:
			j := i
			for j < len(data) && !isPDFWhitespace(data[j]) && !isPDFDelimiter(data[j]) {
				j++
			}
			if j == i {
				// stray delimiter such as ')' or '{'
				i++
				continue
			}
			op := string(data[i:j])
			i = j

			switch op {
			case "Tj":
				if s, ok := lastString(); ok {
					out.WriteString(s)
				}
			case "TJ":
				if len(stack) > 0 && stack[len(stack)-1].isArray {
					for _, elem := range stack[len(stack)-1].arr {
						if elem.isString {
							out.WriteString(elem.str)
						} else if elem.isNum && elem.num < tjWordBreak {
							space()
						}
					}
				}
			case "'", "\"":
				newline()
				if s, ok := lastString(); ok {
					out.WriteString(s)
				}
			case "T*", "Tm":
				newline()
			case "Td", "TD":
				if len(stack) >= 2 && stack[len(stack)-1].isNum && stack[len(stack)-1].num != 0 {
					newline()
				} else {
					space()
				}
			case "ET":
				newline()
			case "BI":
				i = skipInlineImage(data, i)
			}
			stack = stack[:0]
		}
	}

	return cleanExtractedText(out.String())
}

func readLiteralString(data []byte, start int) (string, int) {
	var b strings.Builder
	depth := 1
	i := start
	for i < len(data) {
		c := data[i]
		switch c {
		case '\\':
			i++
			if i >= len(data) {
				break
			}
			switch e := data[i]; e {
			case 'n':
				b.WriteByte('\n')
			case 'r':
				b.WriteByte('\r')
			case 't':
				b.WriteByte('\t')
			case 'b', 'f':
			case '\r', '\n':
				// line continuation
			default:
				if e >= '0' && e <= '7' {
					val := int(e - '0')
					for k := 0; k < 2 && i+1 < len(data) && data[i+1] >= '0' && data[i+1] <= '7'; k++ {
						i++
						val = val*8 + int(data[i]-'0')
					}
					b.WriteRune(rune(byte(val)))
				} else {
					b.WriteByte(e)
				}
			}
		case '(':
			depth++
			b.WriteByte(c)
		case ')':
			depth--
			if depth == 0 {
				return b.String(), i + 1
			}
			b.WriteByte(c)
		default:
			if c < 0x80 {
				b.WriteByte(c)
			} else {
				b.WriteRune(rune(c))
			}
		}
		i++
	}
	return b.String(), i
}

func decodeHexString(raw []byte) string {
	cleaned := make([]byte, 0, len(raw)+1)
	for _, c := range raw {
		if !isPDFWhitespace(c) {
			cleaned = append(cleaned, c)
		}
	}
	if len(cleaned)%2 == 1 {
		cleaned = append(cleaned, '0')
	}
	decoded, err := hex.DecodeString(string(cleaned))
	if err != nil {
		return ""
	}
	var b strings.Builder
	for _, c := range decoded {
		b.WriteRune(rune(c))
	}
	return b.String()
}

func skipInlineImage(data []byte, i int) int {
	id := bytes.Index(data[i:], []byte("ID"))
	if id < 0 {
		return len(data)
	}
	i += id + 2
	for i+2 < len(data) {
		if isPDFWhitespace(data[i]) && data[i+1] == 'E' && data[i+2] == 'I' &&
			(i+3 == len(data) || isPDFWhitespace(data[i+3])) {
			return i + 3
		}
		i++
	}
	return len(data)
}

func cleanExtractedText(text string) string {
	lines := strings.Split(text, "\n")
	kept := lines[:0]
	for _, line := range lines {
		line = strings.Map(func(r rune) rune {
			if unicode.IsPrint(r) || r == '\t' {
				return r
			}
			return -1
		}, line)
		if fields := strings.Fields(line); len(fields) > 0 {
			kept = append(kept, strings.Join(fields, " "))
		}
	}
	return strings.Join(kept, "\n")
}

func isPDFWhitespace(c byte) bool {
	return c == ' ' || c == '\n' || c == '\r' || c == '\t' || c == '\f' || c == 0
}

func isPDFDelimiter(c byte) bool {
	switch c {
	case '(', ')', '<', '>', '[', ']', '{', '}', '/', '%':
		return true
	}
	return false
}
