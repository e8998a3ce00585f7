// Package questions validates learner answers.
//
// Three variants are supported: MultipleChoice, Translation and FillInBlank.
// All of them compare answers after trimming whitespace and lower-casing, and
// score correct answers by difficulty (5, 10 or 15 points) plus a bonus for a
// first attempt. Only Translation accepts near misses, using fuzzy.Similarity.
package questions
