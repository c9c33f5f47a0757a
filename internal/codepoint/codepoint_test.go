package codepoint_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/go-nfd/unorm/internal/codepoint"
)

func TestPackRoundTrip(t *testing.T) {
	type row struct {
		scalar rune
		ccc    uint8
	}

	rows := []row{
		{0x0041, 0},
		{0x0300, 230},
		{0x10FFFF, 254},
		{0xAC00, 0},
		{0x1E94A, 7},
	}

	for _, r := range rows {
		cp := codepoint.Pack(r.scalar, r.ccc)
		assert.Equal(t, r.scalar, cp.Code(), "Code for %#x/%d", r.scalar, r.ccc)
		assert.Equal(t, r.ccc, cp.CCC(), "CCC for %#x/%d", r.scalar, r.ccc)
		assert.Equal(t, r.ccc == 0, cp.IsStarter(), "IsStarter for %#x/%d", r.scalar, r.ccc)
	}
}
