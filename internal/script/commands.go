package script

// ArgSpec describes one positional argument of a command.
type ArgSpec struct {
	Name        string `json:"name"`
	Type        string `json:"type"` // "int" or "path"
	Description string `json:"description"`
}

// CommandSpec describes a script command and the arguments it consumes.
type CommandSpec struct {
	Name        string    `json:"name"`
	Args        []ArgSpec `json:"args"`
	Usage       string    `json:"usage"`
	Description string    `json:"description"`

	// NeedsImage is set for commands that operate on the current image.
	NeedsImage bool `json:"needs_image"`
}

// Arity returns the number of argument tokens the command consumes.
func (c CommandSpec) Arity() int {
	return len(c.Args)
}

func intArg(name, description string) ArgSpec {
	return ArgSpec{Name: name, Type: "int", Description: description}
}

func pathArg(name, description string) ArgSpec {
	return ArgSpec{Name: name, Type: "path", Description: description}
}

// Commands lists every command a Session accepts. Keep it in step with the
// switch in Session.Apply.
var Commands = []CommandSpec{
	{
		Name:        "open",
		Args:        []ArgSpec{pathArg("file", "image file to load")},
		Usage:       "open <file>",
		Description: "Replace the current image with the contents of file.",
	},
	{
		Name: "blank",
		Args: []ArgSpec{
			intArg("w", "width"), intArg("h", "height"),
			intArg("r", "red"), intArg("g", "green"), intArg("b", "blue"),
		},
		Usage:       "blank <w> <h> <r> <g> <b>",
		Description: "Replace the current image with a w x h image of one color.",
	},
	{
		Name:        "save",
		Args:        []ArgSpec{pathArg("file", "destination file")},
		Usage:       "save <file>",
		Description: "Write the current image; the extension selects the format.",
		NeedsImage:  true,
	},
	{
		Name:        "xpm2_open",
		Args:        []ArgSpec{pathArg("file", "XPM2 file to load")},
		Usage:       "xpm2_open <file>",
		Description: "Replace the current image with an XPM2 file, whatever its extension.",
	},
	{
		Name:        "xpm2_save",
		Args:        []ArgSpec{pathArg("file", "destination file")},
		Usage:       "xpm2_save <file>",
		Description: "Write the current image as XPM2, whatever the extension.",
		NeedsImage:  true,
	},
	{
		Name:        "invert",
		Usage:       "invert",
		Description: "Replace every channel v with 255-v.",
		NeedsImage:  true,
	},
	{
		Name:        "to_gray_scale",
		Usage:       "to_gray_scale",
		Description: "Set every channel to the truncated mean of r, g and b.",
		NeedsImage:  true,
	},
	{
		Name: "replace",
		Args: []ArgSpec{
			intArg("r1", "red to match"), intArg("g1", "green to match"), intArg("b1", "blue to match"),
			intArg("r2", "new red"), intArg("g2", "new green"), intArg("b2", "new blue"),
		},
		Usage:       "replace <r1> <g1> <b1> <r2> <g2> <b2>",
		Description: "Recolor every pixel equal to (r1,g1,b1) with (r2,g2,b2).",
		NeedsImage:  true,
	},
	{
		Name: "fill",
		Args: []ArgSpec{
			intArg("x", "left edge"), intArg("y", "top edge"),
			intArg("w", "width"), intArg("h", "height"),
			intArg("r", "red"), intArg("g", "green"), intArg("b", "blue"),
		},
		Usage:       "fill <x> <y> <w> <h> <r> <g> <b>",
		Description: "Paint a rectangle with one color.",
		NeedsImage:  true,
	},
	{
		Name:        "h_mirror",
		Usage:       "h_mirror",
		Description: "Mirror the image left to right.",
		NeedsImage:  true,
	},
	{
		Name:        "v_mirror",
		Usage:       "v_mirror",
		Description: "Mirror the image top to bottom.",
		NeedsImage:  true,
	},
	{
		Name: "add",
		Args: []ArgSpec{
			pathArg("file", "image to copy from"),
			intArg("r", "neutral red"), intArg("g", "neutral green"), intArg("b", "neutral blue"),
			intArg("x", "left edge"), intArg("y", "top edge"),
		},
		Usage:       "add <file> <r> <g> <b> <x> <y>",
		Description: "Copy the pixels of file that differ from (r,g,b) onto the image at (x,y).",
		NeedsImage:  true,
	},
	{
		Name: "crop",
		Args: []ArgSpec{
			intArg("x", "left edge"), intArg("y", "top edge"),
			intArg("w", "width"), intArg("h", "height"),
		},
		Usage:       "crop <x> <y> <w> <h>",
		Description: "Keep only the given rectangle.",
		NeedsImage:  true,
	},
	{
		Name:        "rotate_left",
		Usage:       "rotate_left",
		Description: "Rotate 90 degrees counter-clockwise.",
		NeedsImage:  true,
	},
	{
		Name:        "rotate_right",
		Usage:       "rotate_right",
		Description: "Rotate 90 degrees clockwise.",
		NeedsImage:  true,
	},
	{
		Name:        "median_filter",
		Args:        []ArgSpec{intArg("ws", "window size")},
		Usage:       "median_filter <ws>",
		Description: "Replace each channel with the median of its ws x ws neighborhood.",
		NeedsImage:  true,
	},
}

var commandIndex = func() map[string]CommandSpec {
	m := make(map[string]CommandSpec, len(Commands))
	for _, c := range Commands {
		m[c.Name] = c
	}
	return m
}()

// Lookup returns the CommandSpec of the named command.
func Lookup(name string) (CommandSpec, bool) {
	c, ok := commandIndex[name]
	return c, ok
}
