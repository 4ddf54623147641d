package exacteval

import "math/big"

// splitSquarefree factors a non-negative n as outside² × radicand with the
// radicand square-free, so √n = outside·√radicand. Zero is reported as
// radicand 0. Plain trial division; the magnitudes here come from
// multiplying small human-typed integers, and determinism matters more
// than factoring speed.
func splitSquarefree(n *big.Int) (outside, radicand *big.Int) {
	if n.Sign() < 0 {
		panic("exacteval: splitSquarefree on negative value")
	}
	if n.Sign() == 0 {
		return big.NewInt(1), big.NewInt(0)
	}
	outside = big.NewInt(1)
	radicand = new(big.Int).Set(n)
	p := big.NewInt(2)
	pp := new(big.Int).Mul(p, p)
	for pp.Cmp(radicand) <= 0 {
		q, r := new(big.Int).QuoRem(radicand, pp, new(big.Int))
		if r.Sign() == 0 {
			// Move the pair of factors outside the radical. p² may divide
			// again, so don't advance p.
			radicand.Set(q)
			outside.Mul(outside, p)
			continue
		}
		p.Add(p, bigOne)
		pp.Mul(p, p)
	}
	return outside, radicand
}
