// Package utils provides internal helpers shared by the output formatters.
// This package is not intended to be imported by external code.
package utils
