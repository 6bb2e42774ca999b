// Package integration provides end-to-end tests for the datex library.
//
// Package: integration
// Title: datex Integration Tests
// Description: This package contains integration tests that verify the
//              interaction between the datex packages: settings files feeding
//              the zone registry and logger, parsing flowing into timezone
//              operations across frames and series, error codes crossing
//              package boundaries intact, and diagnostic logging from the
//              dispatch layer.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-29
// Modified: 2026-08-29
//
// Change History:
// - 2026-08-29 v0.1.0: Initial implementation
//
// Test Categories:
//
// Pipeline Integration Tests (pipeline_integration_test.go):
// - Settings file → alias registry → zone operations
// - Raw frame → Parse → SetZone → Format round trips
// - Error code and severity propagation across packages
// - Warning output from the permissive dispatch path
package integration
