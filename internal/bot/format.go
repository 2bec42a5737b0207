package bot

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// knownProfileFields are rendered first, in a fixed order, with dedicated
// labels. Everything else in the profile is appended generically.
var knownProfileFields = map[string]bool{
	"username":     true,
	"email":        true,
	"name":         true,
	"subscription": true,
	"cameras":      true,
	"permissions":  true,
}

// FormatProfile renders the profile object returned by the Kerberos.io
// API as Slack mrkdwn. Recognized fields with falsy values (empty string,
// zero, empty list) are skipped entirely.
func FormatProfile(profile map[string]any) string {
	var b strings.Builder
	b.WriteString("*📊 Your Kerberos.io Profile*\n\n")

	user := profile["username"]
	if !truthy(user) {
		user = profile["email"]
	}
	if truthy(user) {
		fmt.Fprintf(&b, "*User:* %s\n", scalar(user))
	}

	if v := profile["name"]; truthy(v) {
		fmt.Fprintf(&b, "*Name:* %s\n", scalar(v))
	}
	if v := profile["subscription"]; truthy(v) {
		fmt.Fprintf(&b, "*Subscription:* %s\n", scalar(v))
	}
	if v := profile["cameras"]; truthy(v) {
		if list, ok := v.([]any); ok {
			fmt.Fprintf(&b, "*Cameras:* %d\n", len(list))
		} else {
			fmt.Fprintf(&b, "*Cameras:* %s\n", scalar(v))
		}
	}
	if v := profile["permissions"]; truthy(v) {
		if list, ok := v.([]any); ok {
			parts := make([]string, len(list))
			for i, p := range list {
				parts[i] = scalar(p)
			}
			fmt.Fprintf(&b, "*Permissions:* %s\n", strings.Join(parts, ", "))
		} else {
			fmt.Fprintf(&b, "*Permissions:* %s\n", scalar(v))
		}
	}

	// Go maps have no stable iteration order, so the remaining fields are
	// emitted sorted by key.
	extra := make([]string, 0, len(profile))
	for key, value := range profile {
		if knownProfileFields[key] || value == nil {
			continue
		}
		extra = append(extra, key)
	}
	sort.Strings(extra)

	for _, key := range extra {
		fmt.Fprintf(&b, "*%s:* %s\n", capitalize(key), renderValue(profile[key]))
	}

	return b.String()
}

// truthy mirrors the loose presence checks of the original bot: zero,
// empty string and empty collection all count as absent.
func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	case float64:
		return t != 0
	case int:
		return t != 0
	case int64:
		return t != 0
	case []any:
		return len(t) > 0
	case map[string]any:
		return len(t) > 0
	default:
		return true
	}
}

// scalar renders a recognized field value without quoting.
func scalar(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case bool:
		return strconv.FormatBool(t)
	default:
		return fmt.Sprintf("%v", t)
	}
}

// renderValue serializes an arbitrary profile value as compact
// structured text, so nested objects and lists stay unambiguous.
func renderValue(v any) string {
	switch t := v.(type) {
	case nil:
		return "null"
	case string:
		return strconv.Quote(t)
	case bool, float64, int, int64:
		return scalar(t)
	case []any:
		parts := make([]string, len(t))
		for i, item := range t {
			parts[i] = renderValue(item)
		}
		return "[" + strings.Join(parts, ",") + "]"
	case map[string]any:
		keys := make([]string, 0, len(t))
		for key := range t {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		parts := make([]string, len(keys))
		for i, key := range keys {
			parts[i] = strconv.Quote(key) + ":" + renderValue(t[key])
		}
		return "{" + strings.Join(parts, ",") + "}"
	default:
		return fmt.Sprintf("%v", t)
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}
