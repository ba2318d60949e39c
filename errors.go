/*
 Copyright (C) 2024 Douglas Wayne Potter

 This program is free software: you can redistribute it and/or modify
 it under the terms of the GNU Affero General Public License as
 published by the Free Software Foundation, either version 3 of the
 License, or (at your option) any later version.

 This program is distributed in the hope that it will be useful,
 but WITHOUT ANY WARRANTY; without even the implied warranty of
 MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 GNU Affero General Public License for more details.

 You should have received a copy of the GNU Affero General Public License
 along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/

package simplex

import "fmt"

// ImproperInputError wraps a malformed LP file or tableau. It is never
// swallowed: every parse or structural failure surfaces as one of these,
// wrapping the underlying cause where there is one.
type ImproperInputError struct {
	Message string
	Cause   error
}

func (e *ImproperInputError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("simplex: improper input: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("simplex: improper input: %s", e.Message)
}

func (e *ImproperInputError) Unwrap() error { return e.Cause }

func improperInput(format string, args ...any) error {
	return &ImproperInputError{Message: fmt.Sprintf(format, args...)}
}

func wrapImproperInput(cause error, format string, args ...any) error {
	return &ImproperInputError{Message: fmt.Sprintf(format, args...), Cause: cause}
}
