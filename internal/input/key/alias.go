package key

// Alias tokens accepted in place of a UTF-8 key name.
const (
	AliasSpace = " "
	AliasEnter = "\n"
	AliasRight = "->"
	AliasLeft  = "<-"
)

// aliases maps alias tokens to the logical key they stand for.
var aliases = map[string]Key{
	AliasSpace: KeySpace,
	AliasEnter: KeyEnter,
	AliasRight: KeyRight,
	AliasLeft:  KeyLeft,
}

// ScancodeFunc returns the backend scancode for a logical key.
type ScancodeFunc func(Key) int

// AliasResolver maps alias tokens to backend scancodes.
type AliasResolver struct {
	scancode ScancodeFunc
}

// NewAliasResolver creates a resolver backed by the given scancode lookup.
func NewAliasResolver(scancode ScancodeFunc) AliasResolver {
	return AliasResolver{scancode: scancode}
}

// AliasKey returns the logical key for token, or KeyNone if token is not an alias.
func AliasKey(token string) Key {
	return aliases[token]
}

// Resolve returns the scancode for an alias token.
// ok is false when token is a literal UTF-8 key name.
func (r AliasResolver) Resolve(token string) (scancode int, ok bool) {
	k, isAlias := aliases[token]
	if !isAlias || r.scancode == nil {
		return 0, false
	}
	return r.scancode(k), true
}
