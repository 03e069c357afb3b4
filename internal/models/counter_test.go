package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCounterKeepsFirstSeenOrder(t *testing.T) {
	c := NewCounter()
	c.Inc("b")
	c.Add("a", 2)
	c.Inc("b")

	assert.Equal(t, []UserCount{{UserID: "b", Count: 2}, {UserID: "a", Count: 2}}, c.Entries())
	assert.Equal(t, 2, c.Len())
}

func TestCounterAddZero(t *testing.T) {
	c := NewCounter()
	c.Add("a", 0)

	assert.Zero(t, c.Len())
	assert.Empty(t, c.Map())
}

func TestCounterClone(t *testing.T) {
	c := NewCounter()
	c.Inc("a")

	clone := c.Clone()
	c.Inc("a")
	c.Inc("b")

	assert.Equal(t, map[string]uint64{"a": 1}, clone.Map())
	assert.Equal(t, 1, clone.Len())
}

func TestCounterSetDisplayName(t *testing.T) {
	set := NewCounterSet()
	set.Users["user1"] = User{ID: "user1", Name: "Alice"}
	set.Users["user2"] = User{ID: "user2"}

	assert.Equal(t, "Alice", set.DisplayName("user1"))
	assert.Equal(t, "user2", set.DisplayName("user2"))
	assert.Equal(t, "user3", set.DisplayName("user3"))
}

func TestCategoryTitles(t *testing.T) {
	assert.Len(t, Categories, 9)
	assert.Equal(t, "Edited messages", CategoryEdits.Title())
	assert.Equal(t, "GIFs", CategoryGIFs.Title())
	assert.False(t, Category("polls").Valid())
}
