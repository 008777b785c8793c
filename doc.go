// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package apiconfig provides configuration loading, merging, and resource
// registration facilities for web API applications.
//
// Configuration values are resolved from multiple sources in the following
// priority order (earlier sources win):
//  1. Explicit values — constructor arguments, [Store.Set], [Store.Apply]
//  2. Environment variables, optionally overlaid from a dotenv file
//  3. Defaults supplied at the call site of [Store.Detect]
//
// The main entry point is [New], which seeds a [Store] from an initial
// settings map, snapshots the process environment, and loads an optional
// dotenv file (see the ENV_FILE setting). Individual values are then
// resolved with [Store.Detect], and the complete settings map — including
// the computed DOMAIN of registered resources — is produced by
// [Store.Settings] for the owning framework to consume.
//
// A Store performs no internal locking and is not safe for concurrent
// mutation; callers sharing a Store across goroutines must provide their
// own synchronization.
package apiconfig
