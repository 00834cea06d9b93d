package config

import (
	"fmt"
)

type CacheKeyStruct struct{}

func NewCacheKeyStruct() *CacheKeyStruct {
	return &CacheKeyStruct{}
}

// PaperPayloadKey returns the cache key for a question paper's serialized
// payload. Papers are immutable, so the entry never needs invalidation.
func (r *CacheKeyStruct) PaperPayloadKey(paperID string) string {
	return fmt.Sprintf("paper:%s:payload", paperID)
}

var CacheKey = NewCacheKeyStruct()
