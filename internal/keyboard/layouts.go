package keyboard

// MacLayout is the built-in US Mac laptop layout. skhd names some keys by
// hex keycode, so those keys carry the code as well as the printed label.
var MacLayout = MustKeyboard(4,
	MustRow(
		NewKey("~"), NewKey("1"), NewKey("2"), NewKey("3"), NewKey("4"),
		NewKey("5"), NewKey("6"), NewKey("7"), NewKey("8"), NewKey("9"),
		NewKey("0"), NewKey("-"), NewKey("+"),
		NewKey("delete").WithWidth(1.5),
	),
	MustRow(
		NewKey("tab").WithWidth(1.5),
		NewKey("q"), NewKey("w"), NewKey("e"), NewKey("r"), NewKey("t"),
		NewKey("y"), NewKey("u"), NewKey("i"), NewKey("o"), NewKey("p"),
		NewKey("[").WithCode("0x21"),
		NewKey("]").WithCode("0x1E"),
		NewKey(`\`),
	),
	MustRow(
		NewKey("capslock").WithWidth(1.75),
		NewKey("a"), NewKey("s"), NewKey("d"), NewKey("f"), NewKey("g"),
		NewKey("h"), NewKey("j"), NewKey("k"), NewKey("l"),
		NewKey(";"), NewKey("'"),
		NewKey("return").WithWidth(1.75),
	),
	MustRow(
		Modifier("shift").WithWidth(2.25),
		NewKey("z"), NewKey("x"), NewKey("c"), NewKey("v"), NewKey("b"),
		NewKey("n"), NewKey("m"),
		NewKey(",").WithCode("0x2B"),
		NewKey(".").WithCode("0x2F"),
		NewKey("/").WithCode("0x2C"),
		Modifier("shift").WithCode("rshift").WithWidth(2.25),
	),
	MustRow(
		Modifier("fn"),
		Modifier("ctrl"),
		Modifier("alt"),
		Modifier("cmd").WithWidth(1.25),
		NewKey("space").WithWidth(5),
		Modifier("cmd").WithCode("rcmd").WithWidth(1.25),
		Modifier("alt").WithCode("ralt"),
		NewKey("left"),
		NewKey("up").WithWidth(0.5),
		NewKey("down").WithWidth(0.5),
		NewKey("right"),
	),
)

// Layouts maps layout names to built-in keyboards.
var Layouts = map[string]Keyboard{
	"mac": MacLayout,
}

// Common modifier keys.
var (
	KeyFn   = Modifier("fn")
	KeyCtrl = Modifier("ctrl")
	KeyAlt  = Modifier("alt")
	KeyCmd  = Modifier("cmd")
)
