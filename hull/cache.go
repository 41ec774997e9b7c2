// hull/cache.go
// Copyright(c) 2025 ascent contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package hull

import (
	"path/filepath"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/ascent-sim/ascent/util"
)

// Extraction is pure but not cheap (~1,200 panels plus derived scalars),
// and a segment simulation asks for the same geometry at every
// integration step. Cache memoizes ExtractGeometry keyed on the
// descriptor hash; any change to a curve descriptor produces a new key,
// which is exactly the invalidation the design layer needs.
//
// With Persist set, geometries are also written through to the on-disk
// object cache so repeated runs against the same design skip extraction
// entirely.
type Cache struct {
	geo     *lru.Cache[string, *Geometry]
	Persist bool
}

func NewCache(size int) *Cache {
	if size <= 0 {
		size = 16
	}
	c, err := lru.New[string, *Geometry](size)
	if err != nil {
		panic(err) // only fails for non-positive size
	}
	return &Cache{geo: c}
}

func (c *Cache) Extract(profile *SideProfile, planform *Planform, cross *CrossSection) *Geometry {
	key := Hash(profile, planform, cross)
	if g, ok := c.geo.Get(key); ok {
		return g
	}

	diskPath := filepath.Join("geometry", key)
	if c.Persist {
		var g Geometry
		if _, err := util.CacheRetrieveObject(diskPath, &g); err == nil {
			c.geo.Add(key, &g)
			return &g
		}
	}

	g := ExtractGeometry(profile, planform, cross)
	c.geo.Add(key, g)
	if c.Persist {
		// Best effort; extraction is always available as a fallback.
		_ = util.CacheStoreObject(diskPath, g)
	}
	return g
}
