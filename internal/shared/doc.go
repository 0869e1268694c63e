// Package shared holds cross-cutting helpers that belong to no single
// layer. Today that is only the testutil tree; keep domain logic out.
package shared
