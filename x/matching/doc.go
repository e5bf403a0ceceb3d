/*
Package matching implements settlement of a quadratic funding matching pool.

A creator deposits a fixed matching fund into an escrow. Project owners
register projects for a pool and bind them to the pool and the escrow.
Voters cast weighted votes for projects of a pool. Finally the escrow
deposit is divided between the payees of the escrow, proportionally to the
number of votes each project received:

	share = votes_count * deposit_amount / total_votes

Shares are computed with arbitrary precision integers, rounded down and
written into the distributed amount of each project. No funds are moved.
*/
package matching
