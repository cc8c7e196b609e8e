/*
Package pause implements multi-signature, timelocked pause governance.

A registry of authorized signers, owned by a single configuration owner,
creates proposals to pause or unpause the ledger. A proposal becomes
executable once enough signers approved it (quorum), the timelock elapsed
and it did not expire. Executing it flips the pause state.

Every precondition is checked against the store at call time. Changing the
quorum cancels every outstanding proposal, removing a signer strips its
approvals from them. Proposals are never deleted.

The Gate decorator blocks messages implementing Transfer while the ledger
is paused. All other messages are administrative and always pass.
*/
package pause
