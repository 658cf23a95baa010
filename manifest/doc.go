// SPDX-License-Identifier: EPL-2.0

// Package manifest records where pooled samples came from.
//
// An Entry holds a source path, a size, a display name and the CRC-32 of
// the file's raw bytes. Files are hashed through a bounded read buffer, so
// memory use does not depend on file size.
//
// A Manifest is a list of entries plus one aggregate CRC-32. New sorts the
// entries by path before hashing, so two manifests over the same files have
// the same aggregate regardless of the order the files were discovered in.
//
// # Persistence
//
// Save and FromFile choose the encoding from the file name:
//
//	samples.json      indented JSON
//	samples.yaml      YAML (".yml" also accepted)
//	samples.json.zst  zstd-compressed JSON
//	samples.yaml.zst  zstd-compressed YAML
//
// The JSON form looks like:
//
//	{
//	  "aggregate_hash": 2914526137,
//	  "entries": [
//	    {"path": "kit/kick.wav", "size": 96000, "name": "kick", "hash": 222957957}
//	  ]
//	}
//
// Loading never trusts the stored aggregate; call Verify to compare it with
// the entries, and Stale to find entries whose files changed on disk.
package manifest
