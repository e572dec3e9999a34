package board

import (
	"fmt"
	"strings"
)

// String renders the board in the text form used throughout §6: a header
// line of column letters (skipping 'I'), then one row per board row, each
// prefixed with its 1-based row number, highest row first.
func (b *Board) String() string {
	var sb strings.Builder
	sb.WriteString("  ")
	for x := 1; x <= b.size; x++ {
		sb.WriteByte(columnLetter(x))
		sb.WriteByte(' ')
	}
	sb.WriteByte('\n')
	for y := b.size; y >= 1; y-- {
		fmt.Fprintf(&sb, "%2d ", y)
		for x := 1; x <= b.size; x++ {
			sb.WriteByte(stoneChar(b.points[b.index(x, y)]))
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%d\n", y)
	}
	return sb.String()
}

// columnLetter maps a 1-based column index to the conventional Go board
// letter, skipping 'I' as the rules require.
func columnLetter(x int) byte {
	c := byte('A') + byte(x-1)
	if c >= 'I' {
		c++
	}
	return c
}

func stoneChar(s Stone) byte {
	switch s {
	case StoneBlack:
		return 'X'
	case StoneWhite:
		return 'O'
	case OffBoard:
		return '#'
	default:
		return '.'
	}
}
