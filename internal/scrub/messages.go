// User-friendly error messages with codes for support reference.
//
// Error codes are grouped by category:
//
//	FILE001 - File not found            Patterns: "no such file", "file does not exist"
//	FILE002 - Permission denied         Patterns: "permission denied"
//	FILE003 - Path is a directory       Patterns: "is a directory"
//	FILE004 - Disk full                 Patterns: "no space left"
//	CSV001  - Malformed CSV content     Patterns: "parse error"
//	CSV002  - Header row missing        Patterns: "missing header row"
//	COL001  - Key column missing        Matched by type, not pattern
//	USE001  - Wrong argument count      Patterns: "accepts between"
//	ERR000  - Fallback for anything unmatched
//
// Patterns are matched case-insensitively with strings.Contains; the
// first matching pattern wins, so more specific patterns come before
// general ones.
package scrub

import (
	"errors"
	"fmt"
	"strings"
)

// UserMessage provides user-friendly error information with actionable
// guidance. Users can quote the code when reporting a problem.
type UserMessage struct {
	Message string // What happened (user-friendly)
	Action  string // What to do about it
	Code    string // Error code for support reference
}

type errorPattern struct {
	pattern string
	msg     UserMessage
}

var errorPatterns = []errorPattern{
	{
		pattern: "no such file",
		msg: UserMessage{
			Message: "A file could not be found",
			Action:  "Check the file path and try again",
			Code:    "FILE001",
		},
	},
	{
		// fs.ErrNotExist spells it differently than the syscall error.
		pattern: "file does not exist",
		msg: UserMessage{
			Message: "A file could not be found",
			Action:  "Check the file path and try again",
			Code:    "FILE001",
		},
	},
	{
		pattern: "permission denied",
		msg: UserMessage{
			Message: "A file could not be accessed",
			Action:  "Check the file permissions",
			Code:    "FILE002",
		},
	},
	{
		pattern: "is a directory",
		msg: UserMessage{
			Message: "The path names a directory, not a CSV file",
			Action:  "Pass the path of a .csv file",
			Code:    "FILE003",
		},
	},
	{
		pattern: "no space left",
		msg: UserMessage{
			Message: "The disk is full",
			Action:  "Free up disk space and run again; the original file was not modified",
			Code:    "FILE004",
		},
	},
	{
		pattern: "missing header row",
		msg: UserMessage{
			Message: "The file has no header row",
			Action:  "The first row must name the columns, including \"" + KeyColumn + "\"",
			Code:    "CSV002",
		},
	},
	{
		pattern: "parse error",
		msg: UserMessage{
			Message: "The file is not valid CSV",
			Action:  "Fix the quoting on the reported line and run again",
			Code:    "CSV001",
		},
	},
	{
		pattern: "accepts between",
		msg: UserMessage{
			Message: "Wrong number of arguments",
			Action:  "Pass one file to deduplicate, or a reference file and a target file; see --help",
			Code:    "USE001",
		},
	},
}

// UserMessageFor translates err into a message suitable for end users.
// The missing-column case is matched by type; everything else falls back
// to pattern matching against the error text.
func UserMessageFor(err error) UserMessage {
	var cnf *ColumnNotFoundError
	if errors.As(err, &cnf) {
		return UserMessage{
			Message: fmt.Sprintf("Required column %q is missing from %s", cnf.Column, cnf.File),
			Action:  "Add the column or fix the header spelling; column names are case-sensitive",
			Code:    "COL001",
		}
	}

	text := strings.ToLower(err.Error())
	for _, p := range errorPatterns {
		if strings.Contains(text, p.pattern) {
			return p.msg
		}
	}

	return UserMessage{
		Message: "An unexpected error occurred",
		Action:  "Check the log output for details",
		Code:    "ERR000",
	}
}
