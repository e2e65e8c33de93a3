// Package staff provides account authentication and lifecycle management for
// back-office ("employee") users: credential verification, provisioning with
// safe defaults, enable/disable toggles, and paginated listing.
//
// Account lifecycle:
//   - Employees carry an EmployeeStatus field that is persisted via Bun. The
//     status pair is enabled/disabled; accounts are never physically deleted,
//     disabling is the soft removal path.
//   - Provisioning forces new accounts to enabled with the hash of
//     DefaultPassword, and stamps created/updated audit columns from the
//     acting principal resolved with ActorFromContext.
//
// Verification:
//   - Auther.Authenticate checks account existence, then the credential,
//     then the lock status, in that order, and surfaces each failure as a
//     distinct error variant for the transport layer to map.
//   - Password hashing is a PasswordHasher capability: BcryptHasher for new
//     deployments, LegacyHasher for byte-compatible migration of md5 digests.
package staff
