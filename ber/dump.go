package ber

import (
	"encoding/hex"
	"fmt"
	"io"
	"strings"
)

// Fprint writes an indented dump of t, one line per tag:
//
//	[UNIVERSAL 16] SEQUENCE constructed @0
//	  [UNIVERSAL 12] UTF8String primitive @2 len=3: 646566
func Fprint(w io.Writer, t *Tag) error {
	var sb strings.Builder
	dump(&sb, t, 0)
	_, err := io.WriteString(w, sb.String())
	return err
}

func sprint(t *Tag) string {
	var sb strings.Builder
	dump(&sb, t, 0)
	return strings.TrimSuffix(sb.String(), "\n")
}

func dump(sb *strings.Builder, t *Tag, indent int) {
	sb.WriteString(strings.Repeat("  ", indent))
	fmt.Fprintf(sb, "%s %s", t.Number, t.Form())
	if t.Offset != nil {
		fmt.Fprintf(sb, " @%d", *t.Offset)
	}

	switch p := t.Payload.(type) {
	case Constructed:
		sb.WriteByte('\n')
		for _, child := range p {
			dump(sb, child, indent+1)
		}
	case Primitive:
		fmt.Fprintf(sb, " len=%d", len(p))
		if len(p) > 0 {
			sb.WriteString(": ")
			sb.WriteString(hex.EncodeToString(p))
		}
		sb.WriteByte('\n')
	default:
		sb.WriteString(" len=0\n")
	}
}
