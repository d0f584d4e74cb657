package cascade

// CalculateStyle derives the style of an element from a style sheet.
// chain is the element's selector chain, factory creates the resulting
// declaration and element, if not nil, is a style attached directly to the
// element.
//
// Attributes are merged with fill-if-unset semantics, in this order:
//
//  1. the element's own style, outranking every rule of the sheet
//  2. rules matching the full chain, in sheet priority order
//  3. rules matching the chain with its last selector dropped, then with
//     its last two selectors dropped, and so on up to the root element
//
// Thus, the first rule providing a value for an attribute wins. Neither sheet
// nor chain are modified.
func CalculateStyle(sheet *StyleSheet, chain *SelectorChain, factory DeclarationFactory,
	element Declaration) Declaration {
	//
	result := factory()
	if element != nil {
		result.ComplementWith(element)
	}
	for i := 0; i < chain.Len(); i++ {
		subchain := chain.Clone().DropSelectors(i)
		sheet.ForEach(func(rule *Rule) {
			if subchain.MatchFromEnd(rule.chain) {
				tracer().Debugf("cascade: %s matches rule %s", subchain, rule.chain)
				result.ComplementWith(rule.declaration)
			}
		})
	}
	return result
}
