package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCustomerIndex_MatchesEitherID(t *testing.T) {
	idx := CustomerIndex([]Customer{
		{ID: "1", Name: "Budi"},
		{CustomerID: "C2", FullName: "Ani"},
	})

	assert.Equal(t, "Budi", idx.Resolve("1"))
	assert.Equal(t, "Ani", idx.Resolve("C2"))
	assert.Equal(t, "Unknown Customer", idx.Resolve("C9"))
	assert.Equal(t, "Not Assigned", idx.Resolve(""))
}

func TestNameIndex_FirstRecordWins(t *testing.T) {
	idx := UserIndex("Agent", []User{
		{ID: "7", FullName: "Siti"},
		{ID: "7", FullName: "Duplicate"},
	})

	assert.Equal(t, "Siti", idx.Resolve("7"))
	assert.Equal(t, "Unknown Agent", idx.Resolve("8"))
}
