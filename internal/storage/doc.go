// Package storage provides book storage abstractions and implementations.
//
// The store owns the ordered collection of books and exposes the six
// catalog operations. There is no global state: callers construct as many
// independent instances as they need.
package storage
