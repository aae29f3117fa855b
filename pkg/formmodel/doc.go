// Package formmodel holds the per-form key/value store backing every field.
//
// A Model maps field names to tagged Values and notifies subscribers by key
// when a write changes the stored value. Writes equal to the current value
// are silent, so repeated identical input (a picker confirming the same
// date, a text watcher echoing the same string) never fans out. Observers
// receive only the key and re-read the value with Get.
//
// Models carry no UI knowledge and no locking: every call is expected on the
// single interaction thread that owns the form.
package formmodel
