package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconFont     = "\uf031" // font
	IconCheck    = "\uf00c" // check
	IconX        = "\uf00d" // x
	IconWarning  = "\uf071" // warning
	IconInfo     = "\uf05a" // info
	IconGlobe    = "\uf0ac" // web
	IconFilter   = "\uf0b0" // filter
	IconBookmark = "\uf02e" // bookmark
	IconCache    = "\uf49e" // cache
	IconTrash    = "\uf1f8" // trash
	IconStar     = "\uf005" // star
)

const (
	cursorEmpty    = "  "
	cursorSelected = "\u25b8 " // ▸ Black right-pointing small triangle
)
