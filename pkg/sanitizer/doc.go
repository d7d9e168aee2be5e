// Package sanitizer cleans user supplied text before it is shown in a toast.
//
// The helpers are small string transforms that chain with Apply and Compose:
//
//	title := sanitizer.Compose(
//	    sanitizer.RemoveControlChars,
//	    sanitizer.SingleLine,
//	    sanitizer.Truncate(120),
//	)
//	clean := title("  Disk\nalmost   full\x00 ")
//
// ClassList reduces arbitrary input to a deduplicated list of safe CSS class
// names.
package sanitizer
