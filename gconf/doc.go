/*
Package gconf implements a configuration store intended to be used as a global,
in-database configuration.

Each extension stores a single configuration entity under the "_c:<pkg>" key.
The configuration is loaded from the genesis file and can be changed later
only by the extension itself, usually as a result of an owner authorized
message.

A missing configuration is a critical condition for the application and
there is no recovery path for the client. Application must be configured
correctly during the genesis.
*/
package gconf
