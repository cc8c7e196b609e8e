/*
Package x contains the helpers shared by the extensions: authentication of
the caller and the common validation interface.
*/
package x
