// Package domain contains the core model for solidkit.
//
// The domain is transport- and persistence-agnostic: it knows nothing about
// YAML, the filesystem or the console. Capability contracts live in ports,
// concrete strategy variants in infra, and both map into/from these types.
package domain
