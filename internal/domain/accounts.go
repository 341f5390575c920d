package domain

// ResolvedAccount is an account with its parent chain flattened:
// full path name, top-level parent, and category labels when the
// account lives under the asset root.
type ResolvedAccount struct {
	ID            string
	ParentID      string
	Name          string
	AccountType   string
	CommodityID   string
	FullName      string
	TopParentName string
	Depth         int
	Category      string
	Subcategory   string
}

// ResolveAccountTree walks the account adjacency list iteratively and
// resolves each account's full name and top parent. The root account
// itself (empty parent) is excluded from paths, matching ledger
// display names. Accounts under assetRoot additionally carry category
// (direct child of the root) and subcategory (grandchild) labels.
// Orphaned subtrees are silently dropped.
func ResolveAccountTree(rows []AccountRow, assetRoot string) []ResolvedAccount {
	children := make(map[string][]AccountRow)
	var roots []AccountRow
	for _, row := range rows {
		if row.ParentID == "" {
			roots = append(roots, row)
			continue
		}
		children[row.ParentID] = append(children[row.ParentID], row)
	}

	type frame struct {
		row         AccountRow
		fullName    string
		topParent   string
		depth       int
		category    string
		subcategory string
		underAsset  bool
	}

	var resolved []ResolvedAccount
	var stack []frame
	for _, root := range roots {
		for _, child := range children[root.ID] {
			stack = append(stack, frame{
				row:       child,
				fullName:  child.Name,
				topParent: child.Name,
				depth:     1,
			})
		}
	}

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		resolved = append(resolved, ResolvedAccount{
			ID:            f.row.ID,
			ParentID:      f.row.ParentID,
			Name:          f.row.Name,
			AccountType:   f.row.AccountType,
			CommodityID:   f.row.CommodityID,
			FullName:      f.fullName,
			TopParentName: f.topParent,
			Depth:         f.depth,
			Category:      f.category,
			Subcategory:   f.subcategory,
		})

		for _, child := range children[f.row.ID] {
			next := frame{
				row:        child,
				fullName:   f.fullName + AccountPathDelimiter + child.Name,
				topParent:  f.topParent,
				depth:      f.depth + 1,
				underAsset: f.underAsset || (f.row.Name == assetRoot && f.depth == 1),
			}
			if next.underAsset {
				switch {
				case !f.underAsset:
					// direct child of the asset root
					next.category = child.Name
				case f.subcategory == "":
					next.category = f.category
					next.subcategory = child.Name
				default:
					next.category = f.category
					next.subcategory = f.subcategory
				}
			}
			stack = append(stack, next)
		}
	}

	return resolved
}
