package glfw

import "github.com/gogpu/gpucontext"

// Key is a layout-independent key code. Values equal the native GLFW_KEY_*
// constants; printable keys use their US-layout ASCII value.
type Key int

// Key codes.
const (
	KeyUnknown Key = -1

	KeySpace        Key = 32
	KeyApostrophe   Key = 39
	KeyComma        Key = 44
	KeyMinus        Key = 45
	KeyPeriod       Key = 46
	KeySlash        Key = 47
	Key0            Key = 48
	Key1            Key = 49
	Key2            Key = 50
	Key3            Key = 51
	Key4            Key = 52
	Key5            Key = 53
	Key6            Key = 54
	Key7            Key = 55
	Key8            Key = 56
	Key9            Key = 57
	KeySemicolon    Key = 59
	KeyEqual        Key = 61
	KeyA            Key = 65
	KeyB            Key = 66
	KeyC            Key = 67
	KeyD            Key = 68
	KeyE            Key = 69
	KeyF            Key = 70
	KeyG            Key = 71
	KeyH            Key = 72
	KeyI            Key = 73
	KeyJ            Key = 74
	KeyK            Key = 75
	KeyL            Key = 76
	KeyM            Key = 77
	KeyN            Key = 78
	KeyO            Key = 79
	KeyP            Key = 80
	KeyQ            Key = 81
	KeyR            Key = 82
	KeyS            Key = 83
	KeyT            Key = 84
	KeyU            Key = 85
	KeyV            Key = 86
	KeyW            Key = 87
	KeyX            Key = 88
	KeyY            Key = 89
	KeyZ            Key = 90
	KeyLeftBracket  Key = 91
	KeyBackslash    Key = 92
	KeyRightBracket Key = 93
	KeyGraveAccent  Key = 96

	KeyEscape       Key = 256
	KeyEnter        Key = 257
	KeyTab          Key = 258
	KeyBackspace    Key = 259
	KeyInsert       Key = 260
	KeyDelete       Key = 261
	KeyRight        Key = 262
	KeyLeft         Key = 263
	KeyDown         Key = 264
	KeyUp           Key = 265
	KeyPageUp       Key = 266
	KeyPageDown     Key = 267
	KeyHome         Key = 268
	KeyEnd          Key = 269
	KeyCapsLock     Key = 280
	KeyScrollLock   Key = 281
	KeyNumLock      Key = 282
	KeyPrintScreen  Key = 283
	KeyPause        Key = 284
	KeyF1           Key = 290
	KeyF2           Key = 291
	KeyF3           Key = 292
	KeyF4           Key = 293
	KeyF5           Key = 294
	KeyF6           Key = 295
	KeyF7           Key = 296
	KeyF8           Key = 297
	KeyF9           Key = 298
	KeyF10          Key = 299
	KeyF11          Key = 300
	KeyF12          Key = 301
	KeyF25          Key = 314
	KeyKP0          Key = 320
	KeyKP9          Key = 329
	KeyKPDecimal    Key = 330
	KeyKPDivide     Key = 331
	KeyKPMultiply   Key = 332
	KeyKPSubtract   Key = 333
	KeyKPAdd        Key = 334
	KeyKPEnter      Key = 335
	KeyKPEqual      Key = 336
	KeyLeftShift    Key = 340
	KeyLeftControl  Key = 341
	KeyLeftAlt      Key = 342
	KeyLeftSuper    Key = 343
	KeyRightShift   Key = 344
	KeyRightControl Key = 345
	KeyRightAlt     Key = 346
	KeyRightSuper   Key = 347
	KeyMenu         Key = 348
)

// Action is the state change reported with a key event.
type Action int

// Key actions.
const (
	Release Action = 0
	Press   Action = 1
	Repeat  Action = 2
)

func (a Action) String() string {
	switch a {
	case Release:
		return "Release"
	case Press:
		return "Press"
	case Repeat:
		return "Repeat"
	}
	return "Action(?)"
}

// ModifierKey is the set of modifier keys held during a key event.
type ModifierKey int

// Modifier bits.
const (
	ModShift    ModifierKey = 0x0001
	ModControl  ModifierKey = 0x0002
	ModAlt      ModifierKey = 0x0004
	ModSuper    ModifierKey = 0x0008
	ModCapsLock ModifierKey = 0x0010
	ModNumLock  ModifierKey = 0x0020
)

// Modifiers converts m to the gpucontext modifier set. The bit layouts are
// identical; unknown bits are dropped.
func (m ModifierKey) Modifiers() gpucontext.Modifiers {
	return gpucontext.Modifiers(m & 0x3F)
}

// keyTable maps the keys that are not part of a contiguous range.
var keyTable = map[Key]gpucontext.Key{
	KeySpace:        gpucontext.KeySpace,
	KeyApostrophe:   gpucontext.KeyApostrophe,
	KeyComma:        gpucontext.KeyComma,
	KeyMinus:        gpucontext.KeyMinus,
	KeyPeriod:       gpucontext.KeyPeriod,
	KeySlash:        gpucontext.KeySlash,
	KeySemicolon:    gpucontext.KeySemicolon,
	KeyEqual:        gpucontext.KeyEqual,
	KeyLeftBracket:  gpucontext.KeyLeftBracket,
	KeyBackslash:    gpucontext.KeyBackslash,
	KeyRightBracket: gpucontext.KeyRightBracket,
	KeyGraveAccent:  gpucontext.KeyGrave,

	KeyEscape:      gpucontext.KeyEscape,
	KeyEnter:       gpucontext.KeyEnter,
	KeyTab:         gpucontext.KeyTab,
	KeyBackspace:   gpucontext.KeyBackspace,
	KeyInsert:      gpucontext.KeyInsert,
	KeyDelete:      gpucontext.KeyDelete,
	KeyRight:       gpucontext.KeyRight,
	KeyLeft:        gpucontext.KeyLeft,
	KeyDown:        gpucontext.KeyDown,
	KeyUp:          gpucontext.KeyUp,
	KeyPageUp:      gpucontext.KeyPageUp,
	KeyPageDown:    gpucontext.KeyPageDown,
	KeyHome:        gpucontext.KeyHome,
	KeyEnd:         gpucontext.KeyEnd,
	KeyCapsLock:    gpucontext.KeyCapsLock,
	KeyScrollLock:  gpucontext.KeyScrollLock,
	KeyNumLock:     gpucontext.KeyNumLock,
	KeyPrintScreen: gpucontext.KeyPrintScreen,
	KeyPause:       gpucontext.KeyPause,

	KeyKPDecimal:  gpucontext.KeyNumpadDecimal,
	KeyKPDivide:   gpucontext.KeyNumpadDivide,
	KeyKPMultiply: gpucontext.KeyNumpadMultiply,
	KeyKPSubtract: gpucontext.KeyNumpadSubtract,
	KeyKPAdd:      gpucontext.KeyNumpadAdd,
	KeyKPEnter:    gpucontext.KeyNumpadEnter,

	KeyLeftShift:    gpucontext.KeyLeftShift,
	KeyLeftControl:  gpucontext.KeyLeftControl,
	KeyLeftAlt:      gpucontext.KeyLeftAlt,
	KeyLeftSuper:    gpucontext.KeyLeftSuper,
	KeyRightShift:   gpucontext.KeyRightShift,
	KeyRightControl: gpucontext.KeyRightControl,
	KeyRightAlt:     gpucontext.KeyRightAlt,
	KeyRightSuper:   gpucontext.KeyRightSuper,
}

// GPUKey converts k to the gpucontext key set. Keys gpucontext has no name
// for (F13 to F25, keypad equal, menu) map to gpucontext.KeyUnknown.
func (k Key) GPUKey() gpucontext.Key {
	switch {
	case k >= KeyA && k <= KeyZ:
		return gpucontext.KeyA + gpucontext.Key(k-KeyA)
	case k >= Key0 && k <= Key9:
		return gpucontext.Key0 + gpucontext.Key(k-Key0)
	case k >= KeyF1 && k <= KeyF12:
		return gpucontext.KeyF1 + gpucontext.Key(k-KeyF1)
	case k >= KeyKP0 && k <= KeyKP9:
		return gpucontext.KeyNumpad0 + gpucontext.Key(k-KeyKP0)
	}
	if g, ok := keyTable[k]; ok {
		return g
	}
	return gpucontext.KeyUnknown
}
