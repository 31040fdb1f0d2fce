package token_test

import (
	"testing"

	"github.com/leapstack-labs/lexkit/pkg/token"
	"github.com/stretchr/testify/assert"
)

var (
	testWord  = token.Register("TEST_WORD", "t-word")
	testBlank = token.Register("TEST_BLANK", "t-blank")
)

func TestDataRangeTo(t *testing.T) {
	d1 := token.Data[token.Type]{
		Kind:  testWord,
		Span:  token.BuildSpan(1, 1, 10, 1),
		Start: 0,
		End:   10,
	}
	d2 := token.Data[token.Type]{
		Kind:  testBlank,
		Span:  token.BuildSpan(100, 1, 1000, 7),
		Start: 10,
		End:   20,
	}

	r := d1.RangeTo(d2)
	assert.Equal(t, d1.Span.LineFrom, r.LineFrom)
	assert.Equal(t, d1.Span.ColumnFrom, r.ColumnFrom)
	assert.Equal(t, d2.Span.LineTo, r.LineTo)
	assert.Equal(t, d2.Span.ColumnTo, r.ColumnTo)
	assert.Equal(t, 10, d1.Len())
}

func TestNewAst(t *testing.T) {
	d := token.Data[token.Type]{Kind: testWord, Span: token.BuildSpan(1, 0, 1, 5), Start: 0, End: 5}

	ast := token.NewAst(d, "hello", false)
	assert.Equal(t, testWord, ast.Kind)
	assert.Equal(t, "hello", ast.Text)
	assert.Equal(t, d.Span, ast.Span)
	assert.False(t, ast.ParsingError)

	bad := token.NewAst(d, "hel", true)
	assert.True(t, bad.ParsingError)
}
