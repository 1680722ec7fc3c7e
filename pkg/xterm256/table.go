package xterm256

// tableEntry pairs a canonical colour name with its xterm code and 24-bit RGB value.
type tableEntry struct {
	name string
	code int
	rgb  uint32
}

// colorTable is the canonical xterm-256 palette. Codes 0-15 are the standard
// and bright ANSI colours, 16-231 the 6x6x6 colour cube, 232-255 the greyscale
// ramp. Names follow the conventional xterm colour names, with _1/_2 suffixes
// disambiguating repeats.
var colorTable = []tableEntry{
	{"BLACK", 0, 0x000000},
	{"MAROON", 1, 0x800000},
	{"GREEN", 2, 0x008000},
	{"OLIVE", 3, 0x808000},
	{"NAVY", 4, 0x000080},
	{"PURPLE", 5, 0x800080},
	{"TEAL", 6, 0x008080},
	{"SILVER", 7, 0xc0c0c0},
	{"GREY", 8, 0x808080},
	{"RED", 9, 0xff0000},
	{"LIME", 10, 0x00ff00},
	{"YELLOW", 11, 0xffff00},
	{"BLUE", 12, 0x0000ff},
	{"FUCHSIA", 13, 0xff00ff},
	{"AQUA", 14, 0x00ffff},
	{"WHITE", 15, 0xffffff},
	{"GREY0", 16, 0x000000},
	{"NAVYBLUE", 17, 0x00005f},
	{"DARKBLUE", 18, 0x000087},
	{"BLUE3", 19, 0x0000af},
	{"BLUE3_1", 20, 0x0000d7},
	{"BLUE1", 21, 0x0000ff},
	{"DARKGREEN", 22, 0x005f00},
	{"DEEPSKYBLUE4", 23, 0x005f5f},
	{"DEEPSKYBLUE4_1", 24, 0x005f87},
	{"DEEPSKYBLUE4_2", 25, 0x005faf},
	{"DODGERBLUE3", 26, 0x005fd7},
	{"DODGERBLUE2", 27, 0x005fff},
	{"GREEN4", 28, 0x008700},
	{"SPRINGGREEN4", 29, 0x00875f},
	{"TURQUOISE4", 30, 0x008787},
	{"DEEPSKYBLUE3", 31, 0x0087af},
	{"DEEPSKYBLUE3_1", 32, 0x0087d7},
	{"DODGERBLUE1", 33, 0x0087ff},
	{"GREEN3", 34, 0x00af00},
	{"SPRINGGREEN3", 35, 0x00af5f},
	{"DARKCYAN", 36, 0x00af87},
	{"LIGHTSEAGREEN", 37, 0x00afaf},
	{"DEEPSKYBLUE2", 38, 0x00afd7},
	{"DEEPSKYBLUE1", 39, 0x00afff},
	{"GREEN3_1", 40, 0x00d700},
	{"SPRINGGREEN3_1", 41, 0x00d75f},
	{"SPRINGGREEN2", 42, 0x00d787},
	{"CYAN3", 43, 0x00d7af},
	{"DARKTURQUOISE", 44, 0x00d7d7},
	{"TURQUOISE2", 45, 0x00d7ff},
	{"GREEN1", 46, 0x00ff00},
	{"SPRINGGREEN2_1", 47, 0x00ff5f},
	{"SPRINGGREEN1", 48, 0x00ff87},
	{"MEDIUMSPRINGGREEN", 49, 0x00ffaf},
	{"CYAN2", 50, 0x00ffd7},
	{"CYAN1", 51, 0x00ffff},
	{"DARKRED", 52, 0x5f0000},
	{"DEEPPINK4", 53, 0x5f005f},
	{"PURPLE4", 54, 0x5f0087},
	{"PURPLE4_1", 55, 0x5f00af},
	{"PURPLE3", 56, 0x5f00d7},
	{"BLUEVIOLET", 57, 0x5f00ff},
	{"ORANGE4", 58, 0x5f5f00},
	{"GREY37", 59, 0x5f5f5f},
	{"MEDIUMPURPLE4", 60, 0x5f5f87},
	{"SLATEBLUE3", 61, 0x5f5faf},
	{"SLATEBLUE3_1", 62, 0x5f5fd7},
	{"ROYALBLUE1", 63, 0x5f5fff},
	{"CHARTREUSE4", 64, 0x5f8700},
	{"DARKSEAGREEN4", 65, 0x5f875f},
	{"PALETURQUOISE4", 66, 0x5f8787},
	{"STEELBLUE", 67, 0x5f87af},
	{"STEELBLUE3", 68, 0x5f87d7},
	{"CORNFLOWERBLUE", 69, 0x5f87ff},
	{"CHARTREUSE3", 70, 0x5faf00},
	{"DARKSEAGREEN4_1", 71, 0x5faf5f},
	{"CADETBLUE", 72, 0x5faf87},
	{"CADETBLUE_1", 73, 0x5fafaf},
	{"SKYBLUE3", 74, 0x5fafd7},
	{"STEELBLUE1", 75, 0x5fafff},
	{"CHARTREUSE3_1", 76, 0x5fd700},
	{"PALEGREEN3", 77, 0x5fd75f},
	{"SEAGREEN3", 78, 0x5fd787},
	{"AQUAMARINE3", 79, 0x5fd7af},
	{"MEDIUMTURQUOISE", 80, 0x5fd7d7},
	{"STEELBLUE1_1", 81, 0x5fd7ff},
	{"CHARTREUSE2", 82, 0x5fff00},
	{"SEAGREEN2", 83, 0x5fff5f},
	{"SEAGREEN1", 84, 0x5fff87},
	{"SEAGREEN1_1", 85, 0x5fffaf},
	{"AQUAMARINE1", 86, 0x5fffd7},
	{"DARKSLATEGRAY2", 87, 0x5fffff},
	{"DARKRED_1", 88, 0x870000},
	{"DEEPPINK4_1", 89, 0x87005f},
	{"DARKMAGENTA", 90, 0x870087},
	{"DARKMAGENTA_1", 91, 0x8700af},
	{"DARKVIOLET", 92, 0x8700d7},
	{"PURPLE_1", 93, 0x8700ff},
	{"ORANGE4_1", 94, 0x875f00},
	{"LIGHTPINK4", 95, 0x875f5f},
	{"PLUM4", 96, 0x875f87},
	{"MEDIUMPURPLE3", 97, 0x875faf},
	{"MEDIUMPURPLE3_1", 98, 0x875fd7},
	{"SLATEBLUE1", 99, 0x875fff},
	{"YELLOW4", 100, 0x878700},
	{"WHEAT4", 101, 0x87875f},
	{"GREY53", 102, 0x878787},
	{"LIGHTSLATEGREY", 103, 0x8787af},
	{"MEDIUMPURPLE", 104, 0x8787d7},
	{"LIGHTSLATEBLUE", 105, 0x8787ff},
	{"YELLOW4_1", 106, 0x87af00},
	{"DARKOLIVEGREEN3", 107, 0x87af5f},
	{"DARKSEAGREEN", 108, 0x87af87},
	{"LIGHTSKYBLUE3", 109, 0x87afaf},
	{"LIGHTSKYBLUE3_1", 110, 0x87afd7},
	{"SKYBLUE2", 111, 0x87afff},
	{"CHARTREUSE2_1", 112, 0x87d700},
	{"DARKOLIVEGREEN3_1", 113, 0x87d75f},
	{"PALEGREEN3_1", 114, 0x87d787},
	{"DARKSEAGREEN3", 115, 0x87d7af},
	{"DARKSLATEGRAY3", 116, 0x87d7d7},
	{"SKYBLUE1", 117, 0x87d7ff},
	{"CHARTREUSE1", 118, 0x87ff00},
	{"LIGHTGREEN", 119, 0x87ff5f},
	{"LIGHTGREEN_1", 120, 0x87ff87},
	{"PALEGREEN1", 121, 0x87ffaf},
	{"AQUAMARINE1_1", 122, 0x87ffd7},
	{"DARKSLATEGRAY1", 123, 0x87ffff},
	{"RED3", 124, 0xaf0000},
	{"DEEPPINK4_2", 125, 0xaf005f},
	{"MEDIUMVIOLETRED", 126, 0xaf0087},
	{"MAGENTA3", 127, 0xaf00af},
	{"DARKVIOLET_1", 128, 0xaf00d7},
	{"PURPLE_2", 129, 0xaf00ff},
	{"DARKORANGE3", 130, 0xaf5f00},
	{"INDIANRED", 131, 0xaf5f5f},
	{"HOTPINK3", 132, 0xaf5f87},
	{"MEDIUMORCHID3", 133, 0xaf5faf},
	{"MEDIUMORCHID", 134, 0xaf5fd7},
	{"MEDIUMPURPLE2", 135, 0xaf5fff},
	{"DARKGOLDENROD", 136, 0xaf8700},
	{"LIGHTSALMON3", 137, 0xaf875f},
	{"ROSYBROWN", 138, 0xaf8787},
	{"GREY63", 139, 0xaf87af},
	{"MEDIUMPURPLE2_1", 140, 0xaf87d7},
	{"MEDIUMPURPLE1", 141, 0xaf87ff},
	{"GOLD3", 142, 0xafaf00},
	{"DARKKHAKI", 143, 0xafaf5f},
	{"NAVAJOWHITE3", 144, 0xafaf87},
	{"GREY69", 145, 0xafafaf},
	{"LIGHTSTEELBLUE3", 146, 0xafafd7},
	{"LIGHTSTEELBLUE", 147, 0xafafff},
	{"YELLOW3", 148, 0xafd700},
	{"DARKOLIVEGREEN3_2", 149, 0xafd75f},
	{"DARKSEAGREEN3_1", 150, 0xafd787},
	{"DARKSEAGREEN2", 151, 0xafd7af},
	{"LIGHTCYAN3", 152, 0xafd7d7},
	{"LIGHTSKYBLUE1", 153, 0xafd7ff},
	{"GREENYELLOW", 154, 0xafff00},
	{"DARKOLIVEGREEN2", 155, 0xafff5f},
	{"PALEGREEN1_1", 156, 0xafff87},
	{"DARKSEAGREEN2_1", 157, 0xafffaf},
	{"DARKSEAGREEN1", 158, 0xafffd7},
	{"PALETURQUOISE1", 159, 0xafffff},
	{"RED3_1", 160, 0xd70000},
	{"DEEPPINK3", 161, 0xd7005f},
	{"DEEPPINK3_1", 162, 0xd70087},
	{"MAGENTA3_1", 163, 0xd700af},
	{"MAGENTA3_2", 164, 0xd700d7},
	{"MAGENTA2", 165, 0xd700ff},
	{"DARKORANGE3_1", 166, 0xd75f00},
	{"INDIANRED_1", 167, 0xd75f5f},
	{"HOTPINK3_1", 168, 0xd75f87},
	{"HOTPINK2", 169, 0xd75faf},
	{"ORCHID", 170, 0xd75fd7},
	{"MEDIUMORCHID1", 171, 0xd75fff},
	{"ORANGE3", 172, 0xd78700},
	{"LIGHTSALMON3_1", 173, 0xd7875f},
	{"LIGHTPINK3", 174, 0xd78787},
	{"PINK3", 175, 0xd787af},
	{"PLUM3", 176, 0xd787d7},
	{"VIOLET", 177, 0xd787ff},
	{"GOLD3_1", 178, 0xd7af00},
	{"LIGHTGOLDENROD3", 179, 0xd7af5f},
	{"TAN", 180, 0xd7af87},
	{"MISTYROSE3", 181, 0xd7afaf},
	{"THISTLE3", 182, 0xd7afd7},
	{"PLUM2", 183, 0xd7afff},
	{"YELLOW3_1", 184, 0xd7d700},
	{"KHAKI3", 185, 0xd7d75f},
	{"LIGHTGOLDENROD2", 186, 0xd7d787},
	{"LIGHTYELLOW3", 187, 0xd7d7af},
	{"GREY84", 188, 0xd7d7d7},
	{"LIGHTSTEELBLUE1", 189, 0xd7d7ff},
	{"YELLOW2", 190, 0xd7ff00},
	{"DARKOLIVEGREEN1", 191, 0xd7ff5f},
	{"DARKOLIVEGREEN1_1", 192, 0xd7ff87},
	{"DARKSEAGREEN1_1", 193, 0xd7ffaf},
	{"HONEYDEW2", 194, 0xd7ffd7},
	{"LIGHTCYAN1", 195, 0xd7ffff},
	{"RED1", 196, 0xff0000},
	{"DEEPPINK2", 197, 0xff005f},
	{"DEEPPINK1", 198, 0xff0087},
	{"DEEPPINK1_1", 199, 0xff00af},
	{"MAGENTA2_1", 200, 0xff00d7},
	{"MAGENTA1", 201, 0xff00ff},
	{"ORANGERED1", 202, 0xff5f00},
	{"INDIANRED1", 203, 0xff5f5f},
	{"INDIANRED1_1", 204, 0xff5f87},
	{"HOTPINK", 205, 0xff5faf},
	{"HOTPINK_1", 206, 0xff5fd7},
	{"MEDIUMORCHID1_1", 207, 0xff5fff},
	{"DARKORANGE", 208, 0xff8700},
	{"SALMON1", 209, 0xff875f},
	{"LIGHTCORAL", 210, 0xff8787},
	{"PALEVIOLETRED1", 211, 0xff87af},
	{"ORCHID2", 212, 0xff87d7},
	{"ORCHID1", 213, 0xff87ff},
	{"ORANGE1", 214, 0xffaf00},
	{"SANDYBROWN", 215, 0xffaf5f},
	{"LIGHTSALMON1", 216, 0xffaf87},
	{"LIGHTPINK1", 217, 0xffafaf},
	{"PINK1", 218, 0xffafd7},
	{"PLUM1", 219, 0xffafff},
	{"GOLD1", 220, 0xffd700},
	{"LIGHTGOLDENROD2_1", 221, 0xffd75f},
	{"LIGHTGOLDENROD2_2", 222, 0xffd787},
	{"NAVAJOWHITE1", 223, 0xffd7af},
	{"MISTYROSE1", 224, 0xffd7d7},
	{"THISTLE1", 225, 0xffd7ff},
	{"YELLOW1", 226, 0xffff00},
	{"LIGHTGOLDENROD1", 227, 0xffff5f},
	{"KHAKI1", 228, 0xffff87},
	{"WHEAT1", 229, 0xffffaf},
	{"CORNSILK1", 230, 0xffffd7},
	{"GREY100", 231, 0xffffff},
	{"GREY3", 232, 0x080808},
	{"GREY7", 233, 0x121212},
	{"GREY11", 234, 0x1c1c1c},
	{"GREY15", 235, 0x262626},
	{"GREY19", 236, 0x303030},
	{"GREY23", 237, 0x3a3a3a},
	{"GREY27", 238, 0x444444},
	{"GREY30", 239, 0x4e4e4e},
	{"GREY35", 240, 0x585858},
	{"GREY39", 241, 0x626262},
	{"GREY42", 242, 0x6c6c6c},
	{"GREY46", 243, 0x767676},
	{"GREY50", 244, 0x808080},
	{"GREY54", 245, 0x8a8a8a},
	{"GREY58", 246, 0x949494},
	{"GREY62", 247, 0x9e9e9e},
	{"GREY66", 248, 0xa8a8a8},
	{"GREY70", 249, 0xb2b2b2},
	{"GREY74", 250, 0xbcbcbc},
	{"GREY78", 251, 0xc6c6c6},
	{"GREY82", 252, 0xd0d0d0},
	{"GREY85", 253, 0xdadada},
	{"GREY89", 254, 0xe4e4e4},
	{"GREY93", 255, 0xeeeeee},
}

// differentiatedNames is a curated list of visually distinguishable colours,
// useful for colourizing identifiers. Duplicates are removed when the palette
// is constructed.
var differentiatedNames = []string{
	"BLUE", "CADETBLUE", "CHARTREUSE1", "CORNFLOWERBLUE",
	"CYAN1", "DARKGOLDENROD", "DARKORANGE", "DEEPPINK1",
	"GOLD1", "DARKKHAKI", "HONEYDEW2", "MEDIUMVIOLETRED",
	"PURPLE", "WHEAT1", "YELLOW2", "ROSYBROWN",
	"MAROON", "LIGHTCYAN3", "HOTPINK", "GREY82",
	"LIGHTCORAL", "LIGHTSEAGREEN", "MEDIUMSPRINGGREEN", "OLIVE",
	"DODGERBLUE2", "ORANGERED1", "PALETURQUOISE1", "THISTLE3",
	"DARKTURQUOISE", "GREEN", "LIGHTGOLDENROD1", "LIGHTSALMON1",
	"PINK1", "NAVAJOWHITE1", "LIGHTSLATEBLUE", "LIGHTCYAN1",
	"GOLD3", "INDIANRED", "PURPLE", "SALMON1",
}
