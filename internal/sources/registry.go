package sources

import "github.com/dhkim-dev/boardwatch/internal/board"

// DefaultRegistry wires the registered boards. Definitions here are
// data, not logic: each target pairs a listing URL with the parser that
// understands the site's markup.
func DefaultRegistry(client Poster) *board.Registry {
	suncheon := &board.Group{
		ID:   "suncheon",
		Name: "순천시청",
		Targets: []*board.Target{
			{
				ID:        "notice",
				Name:      "고시공고",
				SourceURL: "https://www.suncheon.go.kr/portal/bbs/list.do?bbsId=BBS0001&mnuId=MN0042",
				Parser: NewCSRBoard(CSRConfig{
					BaseURL:        "https://www.suncheon.go.kr",
					ListEndpoint:   "/portal/bbs/selectNttList.do",
					DetailEndpoint: "/portal/bbs/selectNtt.do",
					ViewPath:       "/portal/bbs/view.do",
					SiteID:         "suncheon",
					BbsID:          "BBS0001",
					MenuID:         "MN0042",
					BbsSeq:         "3",
					DateColumn:     3,
					DateKind:       board.DateRegistered,
				}, client),
			},
			{
				ID:        "news",
				Name:      "보도자료",
				SourceURL: "https://www.suncheon.go.kr/portal/bbs/list.do?bbsId=BBS0012&mnuId=MN0088",
				Parser: NewCSRBoard(CSRConfig{
					BaseURL:        "https://www.suncheon.go.kr",
					ListEndpoint:   "/portal/bbs/selectNttList.do",
					DetailEndpoint: "/portal/bbs/selectNtt.do",
					ViewPath:       "/portal/bbs/view.do",
					SiteID:         "suncheon",
					BbsID:          "BBS0012",
					MenuID:         "MN0088",
					BbsSeq:         "12",
					DateColumn:     2,
					DateKind:       board.DateModified,
				}, client),
			},
		},
	}

	yeongam := &board.Group{
		ID:   "yeongam",
		Name: "영암군청",
		Targets: []*board.Target{
			{
				ID:        "notice",
				Name:      "공지사항",
				SourceURL: "https://www.yeongam.go.kr/board/list.do?boardId=notice",
				Parser: NewStaticBoard(StaticConfig{
					BaseURL:    "https://www.yeongam.go.kr",
					RowSel:     "table.board_list tbody tr",
					TitleSel:   "td.subject a",
					IDParam:    "seq",
					DateColumn: 3,
					DateKind:   board.DateRegistered,
					ContentSel: "div.board_view div.content",
					AttachSel:  "div.board_view ul.file_list",
				}),
			},
			{
				ID:        "bid",
				Name:      "입찰공고",
				SourceURL: "https://www.yeongam.go.kr/board/list.do?boardId=bid",
				Parser: NewStaticBoard(StaticConfig{
					BaseURL:    "https://www.yeongam.go.kr",
					RowSel:     "table.board_list tbody tr",
					TitleSel:   "td.subject a",
					IDParam:    "seq",
					DateColumn: 4,
					DateKind:   board.DateRegistered,
					ContentSel: "div.board_view div.content",
					AttachSel:  "div.board_view ul.file_list",
				}),
			},
		},
	}

	return board.NewRegistry(suncheon, yeongam)
}
