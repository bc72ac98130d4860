// Package scope has Kotlin-style scope functions over plain values and Use
// for resources that must be closed.
package scope
