package quiz

// weakThreshold is the per-topic accuracy below which a topic counts as a
// weak area.
const weakThreshold = 0.7

// TopicResult aggregates grading outcomes for one topic.
type TopicResult struct {
	Topic   string
	Correct int
	Asked   int
}

// Summary is the end-of-session report.
type Summary struct {
	Subject    string
	Score      int
	Asked      int
	Percentage float64
	Topics     []TopicResult
	WeakAreas  []string
}

// Summarize folds a finished (or abandoned) session into its report.
// Topics appear in first-seen order; skipped questions count as asked but
// never as correct. A session with no asked questions summarizes to zero.
func Summarize(s *Session) Summary {
	sum := Summary{
		Subject: s.Subject,
		Score:   s.Score,
		Asked:   len(s.Questions),
	}
	if sum.Asked > 0 {
		sum.Percentage = float64(sum.Score) / float64(sum.Asked) * 100
	}

	index := make(map[string]int)
	for _, q := range s.Questions {
		i, ok := index[q.Topic]
		if !ok {
			i = len(sum.Topics)
			index[q.Topic] = i
			sum.Topics = append(sum.Topics, TopicResult{Topic: q.Topic})
		}
		sum.Topics[i].Asked++
		if q.IsCorrect {
			sum.Topics[i].Correct++
		}
	}

	for _, tr := range sum.Topics {
		if float64(tr.Correct)/float64(tr.Asked) < weakThreshold {
			sum.WeakAreas = append(sum.WeakAreas, tr.Topic)
		}
	}

	return sum
}
