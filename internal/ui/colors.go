package ui

// Color accessor functions return the escape codes of the currently active
// theme. Callers pair them with ColorReset() around the styled text.

// ColorGreen returns the active theme's success color.
func ColorGreen() string { return GetCurrentTheme().Success }

// ColorRed returns the active theme's error color.
func ColorRed() string { return GetCurrentTheme().Error }

// ColorYellow returns the active theme's warning color.
func ColorYellow() string { return GetCurrentTheme().Warning }

// ColorCyan returns the active theme's primary accent color.
func ColorCyan() string { return GetCurrentTheme().Primary }

// ColorBlue returns the active theme's info color.
func ColorBlue() string { return GetCurrentTheme().Info }

// ColorMagenta returns the active theme's secondary color.
func ColorMagenta() string { return GetCurrentTheme().Secondary }

// ColorBold returns the bold escape code.
func ColorBold() string { return GetCurrentTheme().Bold }

// ColorUnderline returns the underline escape code.
func ColorUnderline() string { return GetCurrentTheme().Underline }

// ColorReset returns the reset escape code.
func ColorReset() string { return GetCurrentTheme().Reset }
