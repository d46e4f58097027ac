package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisplayTitle(t *testing.T) {
	assert.Equal(t, "Bad Buddy", DramaRecord{TitleEn: "Bad Buddy", TitleTh: "แค่เพื่อน"}.DisplayTitle())
	assert.Equal(t, "แค่เพื่อน", DramaRecord{TitleTh: "แค่เพื่อน"}.DisplayTitle())
}

func TestHasPosition(t *testing.T) {
	assert.False(t, LocationRecord{}.HasPosition())
	assert.False(t, LocationRecord{Latitude: 0, Longitude: 0}.HasPosition())
	assert.True(t, LocationRecord{Latitude: 13.7, Longitude: 100.5}.HasPosition())
	// a point exactly on the equator or meridian is still a position
	assert.True(t, LocationRecord{Latitude: 0, Longitude: 100.5}.HasPosition())
}
