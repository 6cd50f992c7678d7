package game

import "time"

type searchStats struct {
	nodes   int
	leaves  int
	cutoffs int
	elapsed time.Duration
}

type searcher struct {
	radius int
	stats  searchStats
}

// search is depth-limited minimax with alpha-beta pruning. Scores are always
// from the engine's point of view. Candidates are tried in GenerateMoves
// order and only a strictly better score replaces the current best, so ties
// go to the earliest candidate.
func (s *searcher) search(b *Board, depth, alpha, beta int, maximizing bool) (*Move, int) {
	s.stats.nodes++

	if depth == 0 || HasWin(*b, Human) || HasWin(*b, Engine) {
		s.stats.leaves++
		return nil, Evaluate(*b, Engine)
	}

	moves := GenerateMoves(*b, s.radius)
	if len(moves) == 0 {
		s.stats.leaves++
		return nil, Evaluate(*b, Engine)
	}

	var best *Move
	if maximizing {
		bestScore := MinScore
		for i := range moves {
			var score int
			b.withPlacement(moves[i], Engine, func() {
				_, score = s.search(b, depth-1, alpha, beta, false)
			})
			if score > bestScore {
				bestScore = score
				best = &moves[i]
			}
			alpha = max(alpha, score)
			if beta <= alpha {
				s.stats.cutoffs++
				break
			}
		}
		return best, bestScore
	}

	bestScore := MaxScore
	for i := range moves {
		var score int
		b.withPlacement(moves[i], Human, func() {
			_, score = s.search(b, depth-1, alpha, beta, true)
		})
		if score < bestScore {
			bestScore = score
			best = &moves[i]
		}
		beta = min(beta, score)
		if beta <= alpha {
			s.stats.cutoffs++
			break
		}
	}
	return best, bestScore
}
