package entity

import "image/color"

// Theme is the visual style of a world
type Theme struct {
	Name   string
	SkyTop color.RGBA
	SkyBot color.RGBA
	Ground color.RGBA
}

// Themes lists one theme per world, world 1 first
var Themes = []Theme{
	{"Green Hills", rgb(0x8ce7ff), rgb(0x4da0ff), rgb(0x3b8d4c)},
	{"Desert Ruins", rgb(0xffd58a), rgb(0xd48f3f), rgb(0xa77c46)},
	{"Ice Mountains", rgb(0xb4f1ff), rgb(0x74bbff), rgb(0x9bd6ff)},
	{"Jungle", rgb(0x8de2a4), rgb(0x328a55), rgb(0x2f7148)},
	{"Underground Caves", rgb(0x5f5f72), rgb(0x1f1f29), rgb(0x6c5a4d)},
	{"Lava World", rgb(0xff9a66), rgb(0xa4291a), rgb(0x8b2d21)},
	{"Sky Floating Islands", rgb(0xd8f1ff), rgb(0x80beff), rgb(0x5ca07a)},
	{"Dark Castle", rgb(0x626285), rgb(0x121225), rgb(0x50435e)},
}

// ThemeForWorld returns the theme of a 1-based world index.
// Worlds past the last theme reuse the last one.
func ThemeForWorld(world int) Theme {
	i := ClampInt(world-1, 0, len(Themes)-1)
	return Themes[i]
}

func rgb(v uint32) color.RGBA {
	return color.RGBA{uint8(v >> 16), uint8(v >> 8), uint8(v), 255}
}
