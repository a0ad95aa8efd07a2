package colour

// x11Names maps lower-case X11/CSS colour names to their sRGB values.
var x11Names = map[string]RGB{
	"aliceblue":            {R: 0xf0, G: 0xf8, B: 0xff},
	"antiquewhite":         {R: 0xfa, G: 0xeb, B: 0xd7},
	"aqua":                 {R: 0x00, G: 0xff, B: 0xff},
	"aquamarine":           {R: 0x7f, G: 0xff, B: 0xd4},
	"azure":                {R: 0xf0, G: 0xff, B: 0xff},
	"beige":                {R: 0xf5, G: 0xf5, B: 0xdc},
	"bisque":               {R: 0xff, G: 0xe4, B: 0xc4},
	"black":                {R: 0x00, G: 0x00, B: 0x00},
	"blanchedalmond":       {R: 0xff, G: 0xeb, B: 0xcd},
	"blue":                 {R: 0x00, G: 0x00, B: 0xff},
	"blueviolet":           {R: 0x8a, G: 0x2b, B: 0xe2},
	"brown":                {R: 0xa5, G: 0x2a, B: 0x2a},
	"burlywood":            {R: 0xde, G: 0xb8, B: 0x87},
	"cadetblue":            {R: 0x5f, G: 0x9e, B: 0xa0},
	"chartreuse":           {R: 0x7f, G: 0xff, B: 0x00},
	"chocolate":            {R: 0xd2, G: 0x69, B: 0x1e},
	"coral":                {R: 0xff, G: 0x7f, B: 0x50},
	"cornflowerblue":       {R: 0x64, G: 0x95, B: 0xed},
	"cornsilk":             {R: 0xff, G: 0xf8, B: 0xdc},
	"crimson":              {R: 0xdc, G: 0x14, B: 0x3c},
	"cyan":                 {R: 0x00, G: 0xff, B: 0xff},
	"darkblue":             {R: 0x00, G: 0x00, B: 0x8b},
	"darkcyan":             {R: 0x00, G: 0x8b, B: 0x8b},
	"darkgoldenrod":        {R: 0xb8, G: 0x86, B: 0x0b},
	"darkgray":             {R: 0xa9, G: 0xa9, B: 0xa9},
	"darkgreen":            {R: 0x00, G: 0x64, B: 0x00},
	"darkgrey":             {R: 0xa9, G: 0xa9, B: 0xa9},
	"darkkhaki":            {R: 0xbd, G: 0xb7, B: 0x6b},
	"darkmagenta":          {R: 0x8b, G: 0x00, B: 0x8b},
	"darkolivegreen":       {R: 0x55, G: 0x6b, B: 0x2f},
	"darkorange":           {R: 0xff, G: 0x8c, B: 0x00},
	"darkorchid":           {R: 0x99, G: 0x32, B: 0xcc},
	"darkred":              {R: 0x8b, G: 0x00, B: 0x00},
	"darksalmon":           {R: 0xe9, G: 0x96, B: 0x7a},
	"darkseagreen":         {R: 0x8f, G: 0xbc, B: 0x8f},
	"darkslateblue":        {R: 0x48, G: 0x3d, B: 0x8b},
	"darkslategray":        {R: 0x2f, G: 0x4f, B: 0x4f},
	"darkslategrey":        {R: 0x2f, G: 0x4f, B: 0x4f},
	"darkturquoise":        {R: 0x00, G: 0xce, B: 0xd1},
	"darkviolet":           {R: 0x94, G: 0x00, B: 0xd3},
	"deeppink":             {R: 0xff, G: 0x14, B: 0x93},
	"deepskyblue":          {R: 0x00, G: 0xbf, B: 0xff},
	"dimgray":              {R: 0x69, G: 0x69, B: 0x69},
	"dimgrey":              {R: 0x69, G: 0x69, B: 0x69},
	"dodgerblue":           {R: 0x1e, G: 0x90, B: 0xff},
	"firebrick":            {R: 0xb2, G: 0x22, B: 0x22},
	"floralwhite":          {R: 0xff, G: 0xfa, B: 0xf0},
	"forestgreen":          {R: 0x22, G: 0x8b, B: 0x22},
	"fuchsia":              {R: 0xff, G: 0x00, B: 0xff},
	"gainsboro":            {R: 0xdc, G: 0xdc, B: 0xdc},
	"ghostwhite":           {R: 0xf8, G: 0xf8, B: 0xff},
	"gold":                 {R: 0xff, G: 0xd7, B: 0x00},
	"goldenrod":            {R: 0xda, G: 0xa5, B: 0x20},
	"gray":                 {R: 0x80, G: 0x80, B: 0x80},
	"green":                {R: 0x00, G: 0x80, B: 0x00},
	"greenyellow":          {R: 0xad, G: 0xff, B: 0x2f},
	"grey":                 {R: 0x80, G: 0x80, B: 0x80},
	"honeydew":             {R: 0xf0, G: 0xff, B: 0xf0},
	"hotpink":              {R: 0xff, G: 0x69, B: 0xb4},
	"indianred":            {R: 0xcd, G: 0x5c, B: 0x5c},
	"indigo":               {R: 0x4b, G: 0x00, B: 0x82},
	"ivory":                {R: 0xff, G: 0xff, B: 0xf0},
	"khaki":                {R: 0xf0, G: 0xe6, B: 0x8c},
	"lavender":             {R: 0xe6, G: 0xe6, B: 0xfa},
	"lavenderblush":        {R: 0xff, G: 0xf0, B: 0xf5},
	"lawngreen":            {R: 0x7c, G: 0xfc, B: 0x00},
	"lemonchiffon":         {R: 0xff, G: 0xfa, B: 0xcd},
	"lightblue":            {R: 0xad, G: 0xd8, B: 0xe6},
	"lightcoral":           {R: 0xf0, G: 0x80, B: 0x80},
	"lightcyan":            {R: 0xe0, G: 0xff, B: 0xff},
	"lightgoldenrodyellow": {R: 0xfa, G: 0xfa, B: 0xd2},
	"lightgray":            {R: 0xd3, G: 0xd3, B: 0xd3},
	"lightgreen":           {R: 0x90, G: 0xee, B: 0x90},
	"lightgrey":            {R: 0xd3, G: 0xd3, B: 0xd3},
	"lightpink":            {R: 0xff, G: 0xb6, B: 0xc1},
	"lightsalmon":          {R: 0xff, G: 0xa0, B: 0x7a},
	"lightseagreen":        {R: 0x20, G: 0xb2, B: 0xaa},
	"lightskyblue":         {R: 0x87, G: 0xce, B: 0xfa},
	"lightslategray":       {R: 0x77, G: 0x88, B: 0x99},
	"lightslategrey":       {R: 0x77, G: 0x88, B: 0x99},
	"lightsteelblue":       {R: 0xb0, G: 0xc4, B: 0xde},
	"lightyellow":          {R: 0xff, G: 0xff, B: 0xe0},
	"lime":                 {R: 0x00, G: 0xff, B: 0x00},
	"limegreen":            {R: 0x32, G: 0xcd, B: 0x32},
	"linen":                {R: 0xfa, G: 0xf0, B: 0xe6},
	"magenta":              {R: 0xff, G: 0x00, B: 0xff},
	"maroon":               {R: 0x80, G: 0x00, B: 0x00},
	"mediumaquamarine":     {R: 0x66, G: 0xcd, B: 0xaa},
	"mediumblue":           {R: 0x00, G: 0x00, B: 0xcd},
	"mediumorchid":         {R: 0xba, G: 0x55, B: 0xd3},
	"mediumpurple":         {R: 0x93, G: 0x70, B: 0xdb},
	"mediumseagreen":       {R: 0x3c, G: 0xb3, B: 0x71},
	"mediumslateblue":      {R: 0x7b, G: 0x68, B: 0xee},
	"mediumspringgreen":    {R: 0x00, G: 0xfa, B: 0x9a},
	"mediumturquoise":      {R: 0x48, G: 0xd1, B: 0xcc},
	"mediumvioletred":      {R: 0xc7, G: 0x15, B: 0x85},
	"midnightblue":         {R: 0x19, G: 0x19, B: 0x70},
	"mintcream":            {R: 0xf5, G: 0xff, B: 0xfa},
	"mistyrose":            {R: 0xff, G: 0xe4, B: 0xe1},
	"moccasin":             {R: 0xff, G: 0xe4, B: 0xb5},
	"navajowhite":          {R: 0xff, G: 0xde, B: 0xad},
	"navy":                 {R: 0x00, G: 0x00, B: 0x80},
	"oldlace":              {R: 0xfd, G: 0xf5, B: 0xe6},
	"olive":                {R: 0x80, G: 0x80, B: 0x00},
	"olivedrab":            {R: 0x6b, G: 0x8e, B: 0x23},
	"orange":               {R: 0xff, G: 0xa5, B: 0x00},
	"orangered":            {R: 0xff, G: 0x45, B: 0x00},
	"orchid":               {R: 0xda, G: 0x70, B: 0xd6},
	"palegoldenrod":        {R: 0xee, G: 0xe8, B: 0xaa},
	"palegreen":            {R: 0x98, G: 0xfb, B: 0x98},
	"paleturquoise":        {R: 0xaf, G: 0xee, B: 0xee},
	"palevioletred":        {R: 0xdb, G: 0x70, B: 0x93},
	"papayawhip":           {R: 0xff, G: 0xef, B: 0xd5},
	"peachpuff":            {R: 0xff, G: 0xda, B: 0xb9},
	"peru":                 {R: 0xcd, G: 0x85, B: 0x3f},
	"pink":                 {R: 0xff, G: 0xc0, B: 0xcb},
	"plum":                 {R: 0xdd, G: 0xa0, B: 0xdd},
	"powderblue":           {R: 0xb0, G: 0xe0, B: 0xe6},
	"purple":               {R: 0x80, G: 0x00, B: 0x80},
	"rebeccapurple":        {R: 0x66, G: 0x33, B: 0x99},
	"red":                  {R: 0xff, G: 0x00, B: 0x00},
	"rosybrown":            {R: 0xbc, G: 0x8f, B: 0x8f},
	"royalblue":            {R: 0x41, G: 0x69, B: 0xe1},
	"saddlebrown":          {R: 0x8b, G: 0x45, B: 0x13},
	"salmon":               {R: 0xfa, G: 0x80, B: 0x72},
	"sandybrown":           {R: 0xf4, G: 0xa4, B: 0x60},
	"seagreen":             {R: 0x2e, G: 0x8b, B: 0x57},
	"seashell":             {R: 0xff, G: 0xf5, B: 0xee},
	"sienna":               {R: 0xa0, G: 0x52, B: 0x2d},
	"silver":               {R: 0xc0, G: 0xc0, B: 0xc0},
	"skyblue":              {R: 0x87, G: 0xce, B: 0xeb},
	"slateblue":            {R: 0x6a, G: 0x5a, B: 0xcd},
	"slategray":            {R: 0x70, G: 0x80, B: 0x90},
	"slategrey":            {R: 0x70, G: 0x80, B: 0x90},
	"snow":                 {R: 0xff, G: 0xfa, B: 0xfa},
	"springgreen":          {R: 0x00, G: 0xff, B: 0x7f},
	"steelblue":            {R: 0x46, G: 0x82, B: 0xb4},
	"tan":                  {R: 0xd2, G: 0xb4, B: 0x8c},
	"teal":                 {R: 0x00, G: 0x80, B: 0x80},
	"thistle":              {R: 0xd8, G: 0xbf, B: 0xd8},
	"tomato":               {R: 0xff, G: 0x63, B: 0x47},
	"turquoise":            {R: 0x40, G: 0xe0, B: 0xd0},
	"violet":               {R: 0xee, G: 0x82, B: 0xee},
	"wheat":                {R: 0xf5, G: 0xde, B: 0xb3},
	"white":                {R: 0xff, G: 0xff, B: 0xff},
	"whitesmoke":           {R: 0xf5, G: 0xf5, B: 0xf5},
	"yellow":               {R: 0xff, G: 0xff, B: 0x00},
	"yellowgreen":          {R: 0x9a, G: 0xcd, B: 0x32},
}
