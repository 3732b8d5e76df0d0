package rng

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestCrypto_Intn(t *testing.T) {
	a := assert.New(t)

	c := Crypto{}
	found := make(map[int]bool)
	// it's possible this could fail, but not likely
	for i := 0; i < 1000; i++ {
		found[c.Intn(5)] = true
	}

	a.True(found[0])
	a.True(found[1])
	a.True(found[2])
	a.True(found[3])
	a.True(found[4])
	a.False(found[5])
}

func TestSeeded_Intn(t *testing.T) {
	a := assert.New(t)

	s1 := NewSeeded(42)
	s2 := NewSeeded(42)
	for i := 0; i < 100; i++ {
		a.Equal(s1.Intn(52), s2.Intn(52))
	}

	s3 := NewSeeded(43)
	same := true
	s1 = NewSeeded(42)
	for i := 0; i < 100; i++ {
		if s1.Intn(52) != s3.Intn(52) {
			same = false
		}
	}
	a.False(same)
}
