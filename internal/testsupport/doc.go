// Package testsupport provides shared fixtures for package tests: temp-dir
// configurations and pre-opened media stores with registered cleanup.
package testsupport
