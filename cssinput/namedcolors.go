package cssinput

import "github.com/jonathantroyer/base24gen/cie"

// namedColors is the CSS Color Module Level 4 extended keyword set,
// adapted from the same x/image/colornames-derived table the teacher's
// colors package ships (colors/namedcolors.go), trimmed to RGB since
// this module has no notion of a named transparency keyword beyond
// "transparent" itself.
var namedColors = map[string]cie.Srgb8{
	"aliceblue":            {R: 0xf0, G: 0xf8, B: 0xff}, // rgb(240, 248, 255)
	"antiquewhite":         {R: 0xfa, G: 0xeb, B: 0xd7}, // rgb(250, 235, 215)
	"aqua":                 {R: 0x00, G: 0xff, B: 0xff}, // rgb(0, 255, 255)
	"aquamarine":           {R: 0x7f, G: 0xff, B: 0xd4}, // rgb(127, 255, 212)
	"azure":                {R: 0xf0, G: 0xff, B: 0xff}, // rgb(240, 255, 255)
	"beige":                {R: 0xf5, G: 0xf5, B: 0xdc}, // rgb(245, 245, 220)
	"bisque":               {R: 0xff, G: 0xe4, B: 0xc4}, // rgb(255, 228, 196)
	"black":                {R: 0x00, G: 0x00, B: 0x00}, // rgb(0, 0, 0)
	"blanchedalmond":       {R: 0xff, G: 0xeb, B: 0xcd}, // rgb(255, 235, 205)
	"blue":                 {R: 0x00, G: 0x00, B: 0xff}, // rgb(0, 0, 255)
	"blueviolet":           {R: 0x8a, G: 0x2b, B: 0xe2}, // rgb(138, 43, 226)
	"brown":                {R: 0xa5, G: 0x2a, B: 0x2a}, // rgb(165, 42, 42)
	"burlywood":            {R: 0xde, G: 0xb8, B: 0x87}, // rgb(222, 184, 135)
	"cadetblue":            {R: 0x5f, G: 0x9e, B: 0xa0}, // rgb(95, 158, 160)
	"chartreuse":           {R: 0x7f, G: 0xff, B: 0x00}, // rgb(127, 255, 0)
	"chocolate":            {R: 0xd2, G: 0x69, B: 0x1e}, // rgb(210, 105, 30)
	"coral":                {R: 0xff, G: 0x7f, B: 0x50}, // rgb(255, 127, 80)
	"cornflowerblue":       {R: 0x64, G: 0x95, B: 0xed}, // rgb(100, 149, 237)
	"cornsilk":             {R: 0xff, G: 0xf8, B: 0xdc}, // rgb(255, 248, 220)
	"crimson":              {R: 0xdc, G: 0x14, B: 0x3c}, // rgb(220, 20, 60)
	"cyan":                 {R: 0x00, G: 0xff, B: 0xff}, // rgb(0, 255, 255)
	"darkblue":             {R: 0x00, G: 0x00, B: 0x8b}, // rgb(0, 0, 139)
	"darkcyan":             {R: 0x00, G: 0x8b, B: 0x8b}, // rgb(0, 139, 139)
	"darkgoldenrod":        {R: 0xb8, G: 0x86, B: 0x0b}, // rgb(184, 134, 11)
	"darkgray":             {R: 0xa9, G: 0xa9, B: 0xa9}, // rgb(169, 169, 169)
	"darkgreen":            {R: 0x00, G: 0x64, B: 0x00}, // rgb(0, 100, 0)
	"darkgrey":             {R: 0xa9, G: 0xa9, B: 0xa9}, // rgb(169, 169, 169)
	"darkkhaki":            {R: 0xbd, G: 0xb7, B: 0x6b}, // rgb(189, 183, 107)
	"darkmagenta":          {R: 0x8b, G: 0x00, B: 0x8b}, // rgb(139, 0, 139)
	"darkolivegreen":       {R: 0x55, G: 0x6b, B: 0x2f}, // rgb(85, 107, 47)
	"darkorange":           {R: 0xff, G: 0x8c, B: 0x00}, // rgb(255, 140, 0)
	"darkorchid":           {R: 0x99, G: 0x32, B: 0xcc}, // rgb(153, 50, 204)
	"darkred":              {R: 0x8b, G: 0x00, B: 0x00}, // rgb(139, 0, 0)
	"darksalmon":           {R: 0xe9, G: 0x96, B: 0x7a}, // rgb(233, 150, 122)
	"darkseagreen":         {R: 0x8f, G: 0xbc, B: 0x8f}, // rgb(143, 188, 143)
	"darkslateblue":        {R: 0x48, G: 0x3d, B: 0x8b}, // rgb(72, 61, 139)
	"darkslategray":        {R: 0x2f, G: 0x4f, B: 0x4f}, // rgb(47, 79, 79)
	"darkslategrey":        {R: 0x2f, G: 0x4f, B: 0x4f}, // rgb(47, 79, 79)
	"darkturquoise":        {R: 0x00, G: 0xce, B: 0xd1}, // rgb(0, 206, 209)
	"darkviolet":           {R: 0x94, G: 0x00, B: 0xd3}, // rgb(148, 0, 211)
	"deeppink":             {R: 0xff, G: 0x14, B: 0x93}, // rgb(255, 20, 147)
	"deepskyblue":          {R: 0x00, G: 0xbf, B: 0xff}, // rgb(0, 191, 255)
	"dimgray":              {R: 0x69, G: 0x69, B: 0x69}, // rgb(105, 105, 105)
	"dimgrey":              {R: 0x69, G: 0x69, B: 0x69}, // rgb(105, 105, 105)
	"dodgerblue":           {R: 0x1e, G: 0x90, B: 0xff}, // rgb(30, 144, 255)
	"firebrick":            {R: 0xb2, G: 0x22, B: 0x22}, // rgb(178, 34, 34)
	"floralwhite":          {R: 0xff, G: 0xfa, B: 0xf0}, // rgb(255, 250, 240)
	"forestgreen":          {R: 0x22, G: 0x8b, B: 0x22}, // rgb(34, 139, 34)
	"fuchsia":              {R: 0xff, G: 0x00, B: 0xff}, // rgb(255, 0, 255)
	"gainsboro":            {R: 0xdc, G: 0xdc, B: 0xdc}, // rgb(220, 220, 220)
	"ghostwhite":           {R: 0xf8, G: 0xf8, B: 0xff}, // rgb(248, 248, 255)
	"gold":                 {R: 0xff, G: 0xd7, B: 0x00}, // rgb(255, 215, 0)
	"goldenrod":            {R: 0xda, G: 0xa5, B: 0x20}, // rgb(218, 165, 32)
	"gray":                 {R: 0x80, G: 0x80, B: 0x80}, // rgb(128, 128, 128)
	"green":                {R: 0x00, G: 0x80, B: 0x00}, // rgb(0, 128, 0)
	"greenyellow":          {R: 0xad, G: 0xff, B: 0x2f}, // rgb(173, 255, 47)
	"grey":                 {R: 0x80, G: 0x80, B: 0x80}, // rgb(128, 128, 128)
	"honeydew":             {R: 0xf0, G: 0xff, B: 0xf0}, // rgb(240, 255, 240)
	"hotpink":              {R: 0xff, G: 0x69, B: 0xb4}, // rgb(255, 105, 180)
	"indianred":            {R: 0xcd, G: 0x5c, B: 0x5c}, // rgb(205, 92, 92)
	"indigo":               {R: 0x4b, G: 0x00, B: 0x82}, // rgb(75, 0, 130)
	"ivory":                {R: 0xff, G: 0xff, B: 0xf0}, // rgb(255, 255, 240)
	"khaki":                {R: 0xf0, G: 0xe6, B: 0x8c}, // rgb(240, 230, 140)
	"lavender":             {R: 0xe6, G: 0xe6, B: 0xfa}, // rgb(230, 230, 250)
	"lavenderblush":        {R: 0xff, G: 0xf0, B: 0xf5}, // rgb(255, 240, 245)
	"lawngreen":            {R: 0x7c, G: 0xfc, B: 0x00}, // rgb(124, 252, 0)
	"lemonchiffon":         {R: 0xff, G: 0xfa, B: 0xcd}, // rgb(255, 250, 205)
	"lightblue":            {R: 0xad, G: 0xd8, B: 0xe6}, // rgb(173, 216, 230)
	"lightcoral":           {R: 0xf0, G: 0x80, B: 0x80}, // rgb(240, 128, 128)
	"lightcyan":            {R: 0xe0, G: 0xff, B: 0xff}, // rgb(224, 255, 255)
	"lightgoldenrodyellow": {R: 0xfa, G: 0xfa, B: 0xd2}, // rgb(250, 250, 210)
	"lightgray":            {R: 0xd3, G: 0xd3, B: 0xd3}, // rgb(211, 211, 211)
	"lightgreen":           {R: 0x90, G: 0xee, B: 0x90}, // rgb(144, 238, 144)
	"lightgrey":            {R: 0xd3, G: 0xd3, B: 0xd3}, // rgb(211, 211, 211)
	"lightpink":            {R: 0xff, G: 0xb6, B: 0xc1}, // rgb(255, 182, 193)
	"lightsalmon":          {R: 0xff, G: 0xa0, B: 0x7a}, // rgb(255, 160, 122)
	"lightseagreen":        {R: 0x20, G: 0xb2, B: 0xaa}, // rgb(32, 178, 170)
	"lightskyblue":         {R: 0x87, G: 0xce, B: 0xfa}, // rgb(135, 206, 250)
	"lightslategray":       {R: 0x77, G: 0x88, B: 0x99}, // rgb(119, 136, 153)
	"lightslategrey":       {R: 0x77, G: 0x88, B: 0x99}, // rgb(119, 136, 153)
	"lightsteelblue":       {R: 0xb0, G: 0xc4, B: 0xde}, // rgb(176, 196, 222)
	"lightyellow":          {R: 0xff, G: 0xff, B: 0xe0}, // rgb(255, 255, 224)
	"lime":                 {R: 0x00, G: 0xff, B: 0x00}, // rgb(0, 255, 0)
	"limegreen":            {R: 0x32, G: 0xcd, B: 0x32}, // rgb(50, 205, 50)
	"linen":                {R: 0xfa, G: 0xf0, B: 0xe6}, // rgb(250, 240, 230)
	"magenta":              {R: 0xff, G: 0x00, B: 0xff}, // rgb(255, 0, 255)
	"maroon":               {R: 0x80, G: 0x00, B: 0x00}, // rgb(128, 0, 0)
	"mediumaquamarine":     {R: 0x66, G: 0xcd, B: 0xaa}, // rgb(102, 205, 170)
	"mediumblue":           {R: 0x00, G: 0x00, B: 0xcd}, // rgb(0, 0, 205)
	"mediumorchid":         {R: 0xba, G: 0x55, B: 0xd3}, // rgb(186, 85, 211)
	"mediumpurple":         {R: 0x93, G: 0x70, B: 0xdb}, // rgb(147, 112, 219)
	"mediumseagreen":       {R: 0x3c, G: 0xb3, B: 0x71}, // rgb(60, 179, 113)
	"mediumslateblue":      {R: 0x7b, G: 0x68, B: 0xee}, // rgb(123, 104, 238)
	"mediumspringgreen":    {R: 0x00, G: 0xfa, B: 0x9a}, // rgb(0, 250, 154)
	"mediumturquoise":      {R: 0x48, G: 0xd1, B: 0xcc}, // rgb(72, 209, 204)
	"mediumvioletred":      {R: 0xc7, G: 0x15, B: 0x85}, // rgb(199, 21, 133)
	"midnightblue":         {R: 0x19, G: 0x19, B: 0x70}, // rgb(25, 25, 112)
	"mintcream":            {R: 0xf5, G: 0xff, B: 0xfa}, // rgb(245, 255, 250)
	"mistyrose":            {R: 0xff, G: 0xe4, B: 0xe1}, // rgb(255, 228, 225)
	"moccasin":             {R: 0xff, G: 0xe4, B: 0xb5}, // rgb(255, 228, 181)
	"navajowhite":          {R: 0xff, G: 0xde, B: 0xad}, // rgb(255, 222, 173)
	"navy":                 {R: 0x00, G: 0x00, B: 0x80}, // rgb(0, 0, 128)
	"oldlace":              {R: 0xfd, G: 0xf5, B: 0xe6}, // rgb(253, 245, 230)
	"olive":                {R: 0x80, G: 0x80, B: 0x00}, // rgb(128, 128, 0)
	"olivedrab":            {R: 0x6b, G: 0x8e, B: 0x23}, // rgb(107, 142, 35)
	"orange":               {R: 0xff, G: 0xa5, B: 0x00}, // rgb(255, 165, 0)
	"orangered":            {R: 0xff, G: 0x45, B: 0x00}, // rgb(255, 69, 0)
	"orchid":               {R: 0xda, G: 0x70, B: 0xd6}, // rgb(218, 112, 214)
	"palegoldenrod":        {R: 0xee, G: 0xe8, B: 0xaa}, // rgb(238, 232, 170)
	"palegreen":            {R: 0x98, G: 0xfb, B: 0x98}, // rgb(152, 251, 152)
	"paleturquoise":        {R: 0xaf, G: 0xee, B: 0xee}, // rgb(175, 238, 238)
	"palevioletred":        {R: 0xdb, G: 0x70, B: 0x93}, // rgb(219, 112, 147)
	"papayawhip":           {R: 0xff, G: 0xef, B: 0xd5}, // rgb(255, 239, 213)
	"peachpuff":            {R: 0xff, G: 0xda, B: 0xb9}, // rgb(255, 218, 185)
	"peru":                 {R: 0xcd, G: 0x85, B: 0x3f}, // rgb(205, 133, 63)
	"pink":                 {R: 0xff, G: 0xc0, B: 0xcb}, // rgb(255, 192, 203)
	"plum":                 {R: 0xdd, G: 0xa0, B: 0xdd}, // rgb(221, 160, 221)
	"powderblue":           {R: 0xb0, G: 0xe0, B: 0xe6}, // rgb(176, 224, 230)
	"purple":               {R: 0x80, G: 0x00, B: 0x80}, // rgb(128, 0, 128)
	"rebeccapurple":        {R: 0x66, G: 0x33, B: 0x99}, // rgb(102, 51, 153)
	"red":                  {R: 0xff, G: 0x00, B: 0x00}, // rgb(255, 0, 0)
	"rosybrown":            {R: 0xbc, G: 0x8f, B: 0x8f}, // rgb(188, 143, 143)
	"royalblue":            {R: 0x41, G: 0x69, B: 0xe1}, // rgb(65, 105, 225)
	"saddlebrown":          {R: 0x8b, G: 0x45, B: 0x13}, // rgb(139, 69, 19)
	"salmon":               {R: 0xfa, G: 0x80, B: 0x72}, // rgb(250, 128, 114)
	"sandybrown":           {R: 0xf4, G: 0xa4, B: 0x60}, // rgb(244, 164, 96)
	"seagreen":             {R: 0x2e, G: 0x8b, B: 0x57}, // rgb(46, 139, 87)
	"seashell":             {R: 0xff, G: 0xf5, B: 0xee}, // rgb(255, 245, 238)
	"sienna":               {R: 0xa0, G: 0x52, B: 0x2d}, // rgb(160, 82, 45)
	"silver":               {R: 0xc0, G: 0xc0, B: 0xc0}, // rgb(192, 192, 192)
	"skyblue":              {R: 0x87, G: 0xce, B: 0xeb}, // rgb(135, 206, 235)
	"slateblue":            {R: 0x6a, G: 0x5a, B: 0xcd}, // rgb(106, 90, 205)
	"slategray":            {R: 0x70, G: 0x80, B: 0x90}, // rgb(112, 128, 144)
	"slategrey":            {R: 0x70, G: 0x80, B: 0x90}, // rgb(112, 128, 144)
	"snow":                 {R: 0xff, G: 0xfa, B: 0xfa}, // rgb(255, 250, 250)
	"springgreen":          {R: 0x00, G: 0xff, B: 0x7f}, // rgb(0, 255, 127)
	"steelblue":            {R: 0x46, G: 0x82, B: 0xb4}, // rgb(70, 130, 180)
	"tan":                  {R: 0xd2, G: 0xb4, B: 0x8c}, // rgb(210, 180, 140)
	"teal":                 {R: 0x00, G: 0x80, B: 0x80}, // rgb(0, 128, 128)
	"thistle":              {R: 0xd8, G: 0xbf, B: 0xd8}, // rgb(216, 191, 216)
	"tomato":               {R: 0xff, G: 0x63, B: 0x47}, // rgb(255, 99, 71)
	"turquoise":            {R: 0x40, G: 0xe0, B: 0xd0}, // rgb(64, 224, 208)
	"violet":               {R: 0xee, G: 0x82, B: 0xee}, // rgb(238, 130, 238)
	"wheat":                {R: 0xf5, G: 0xde, B: 0xb3}, // rgb(245, 222, 179)
	"white":                {R: 0xff, G: 0xff, B: 0xff}, // rgb(255, 255, 255)
	"whitesmoke":           {R: 0xf5, G: 0xf5, B: 0xf5}, // rgb(245, 245, 245)
	"yellow":               {R: 0xff, G: 0xff, B: 0x00}, // rgb(255, 255, 0)
	"yellowgreen":          {R: 0x9a, G: 0xcd, B: 0x32}, // rgb(154, 205, 50)
	"transparent":          {R: 0, G: 0, B: 0},             // rgb(0, 0, 0, 0)
}

