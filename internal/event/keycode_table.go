package event

// keyCodeTable mirrors the Linux evdev KEY_* numeric table. Names use the
// KC_ prefix to match QMK-style remap source. Not every evdev code is
// represented — this covers the alphanumeric, punctuation, navigation,
// function, and modifier keys a keyboard remapper needs; codes outside
// this table still round-trip through KeyCodeFromNumeric as opaque
// KeyCode values, they just have no name.
var keyCodeTable = map[string]KeyCode{
	"KC_RESERVED":    0,
	"KC_ESC":         1,
	"KC_1":           2,
	"KC_2":           3,
	"KC_3":           4,
	"KC_4":           5,
	"KC_5":           6,
	"KC_6":           7,
	"KC_7":           8,
	"KC_8":           9,
	"KC_9":           10,
	"KC_0":           11,
	"KC_MINUS":       12,
	"KC_EQUAL":       13,
	"KC_BACKSPACE":   14,
	"KC_TAB":         15,
	"KC_Q":           16,
	"KC_W":           17,
	"KC_E":           18,
	"KC_R":           19,
	"KC_T":           20,
	"KC_Y":           21,
	"KC_U":           22,
	"KC_I":           23,
	"KC_O":           24,
	"KC_P":           25,
	"KC_LEFTBRACE":   26,
	"KC_RIGHTBRACE":  27,
	"KC_ENTER":       28,
	"KC_LEFTCTRL":    29,
	"KC_A":           30,
	"KC_S":           31,
	"KC_D":           32,
	"KC_F":           33,
	"KC_G":           34,
	"KC_H":           35,
	"KC_J":           36,
	"KC_K":           37,
	"KC_L":           38,
	"KC_SEMICOLON":   39,
	"KC_APOSTROPHE":  40,
	"KC_GRAVE":       41,
	"KC_LEFTSHIFT":   42,
	"KC_BACKSLASH":   43,
	"KC_Z":           44,
	"KC_X":           45,
	"KC_C":           46,
	"KC_V":           47,
	"KC_B":           48,
	"KC_N":           49,
	"KC_M":           50,
	"KC_COMMA":       51,
	"KC_DOT":         52,
	"KC_SLASH":       53,
	"KC_RIGHTSHIFT":  54,
	"KC_KPASTERISK":  55,
	"KC_LEFTALT":     56,
	"KC_SPACE":       57,
	"KC_CAPSLOCK":    58,
	"KC_F1":          59,
	"KC_F2":          60,
	"KC_F3":          61,
	"KC_F4":          62,
	"KC_F5":          63,
	"KC_F6":          64,
	"KC_F7":          65,
	"KC_F8":          66,
	"KC_F9":          67,
	"KC_F10":         68,
	"KC_NUMLOCK":     69,
	"KC_SCROLLLOCK":  70,
	"KC_KP7":         71,
	"KC_KP8":         72,
	"KC_KP9":         73,
	"KC_KPMINUS":     74,
	"KC_KP4":         75,
	"KC_KP5":         76,
	"KC_KP6":         77,
	"KC_KPPLUS":      78,
	"KC_KP1":         79,
	"KC_KP2":         80,
	"KC_KP3":         81,
	"KC_KP0":         82,
	"KC_KPDOT":       83,
	"KC_F11":         87,
	"KC_F12":         88,
	"KC_KPENTER":     96,
	"KC_RIGHTCTRL":   97,
	"KC_KPSLASH":     98,
	"KC_SYSRQ":       99,
	"KC_RIGHTALT":    100,
	"KC_LINEFEED":    101,
	"KC_HOME":        102,
	"KC_UP":          103,
	"KC_PAGEUP":      104,
	"KC_LEFT":        105,
	"KC_RIGHT":       106,
	"KC_END":         107,
	"KC_DOWN":        108,
	"KC_PAGEDOWN":    109,
	"KC_INSERT":      110,
	"KC_DELETE":      111,
	"KC_MUTE":        113,
	"KC_VOLUMEDOWN":  114,
	"KC_VOLUMEUP":    115,
	"KC_POWER":       116,
	"KC_KPEQUAL":     117,
	"KC_PAUSE":       119,
	"KC_KPCOMMA":     121,
	"KC_LEFTMETA":    125,
	"KC_RIGHTMETA":   126,
	"KC_COMPOSE":     127,
	"KC_STOP":        128,
	"KC_AGAIN":       129,
	"KC_COPY":        133,
	"KC_PASTE":       135,
	"KC_FIND":        136,
	"KC_CUT":         137,
	"KC_HELP":        138,
	"KC_MENU":        139,
	"KC_CALC":        140,
	"KC_SLEEP":       142,
	"KC_WWW":         150,
	"KC_MAIL":        155,
	"KC_BOOKMARKS":   156,
	"KC_BACK":        158,
	"KC_FORWARD":     159,
	"KC_EJECTCD":     161,
	"KC_NEXTSONG":    163,
	"KC_PLAYPAUSE":   164,
	"KC_PREVIOUSSONG": 165,
	"KC_STOPCD":      166,
	"KC_REWIND":      168,
	"KC_REFRESH":     173,
	"KC_F13":         183,
	"KC_F14":         184,
	"KC_F15":         185,
	"KC_F16":         186,
	"KC_F17":         187,
	"KC_F18":         188,
	"KC_F19":         189,
	"KC_F20":         190,
	"KC_F21":         191,
	"KC_F22":         192,
	"KC_F23":         193,
	"KC_F24":         194,
	"KC_BRIGHTNESSDOWN": 224,
	"KC_BRIGHTNESSUP":   225,
}
