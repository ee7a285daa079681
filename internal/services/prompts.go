package services

import (
	"fmt"
	"strings"
	"time"

	"justgo/internal/itinerary"
	"justgo/internal/models/request_models"
)

// System prompts. Korean on purpose: the product surface is Korean and
// the model follows format rules far better in the language of the
// examples.
const (
	SystemStrict = "너는 여행 일정 전문가다. 아래 모든 규칙을 반드시 지켜라. " +
		"실제 존재하는 상호명만 쓰고, 괄호 안에 '도로명 주소'를 반드시 포함해라. " +
		"날짜(YYYY-MM-DD (요일))는 전부 포함되어야 하며 하루라도 누락되면 전체를 다시 작성해라. " +
		"총 예상 비용은 일정 끝에 딱 1번만 작성한다."

	SystemEdit = `너는 여행 일정 '편집자'다. 반드시 아래 규칙을 지켜라.
출력 형식: 오직 JSON 한 줄만! (코드블록/설명/마크다운 금지)
{
  "reply": "<간단한 한국어 답변 한 문장>",
  "updated_itinerary": "<수정이 반영된 전체 일정 텍스트(제목 포함 원래 형식 유지)>"
}
편집 원칙:
- 사용자가 준 '현재 일정' 텍스트를 기계적으로 수정해서 반환한다(새로 생성하지 말 것).
- 날짜/시간 포맷, 라인 순서, 전체 형식은 그대로 유지.
- 시간이 바뀌면 '09:00 ~ 10:30' 같은 라인을 실제로 수정.
- '저녁을 더 가볍게' → 저녁 라인의 장소/설명을 가벼운 식사로 바꾸고 비용을 6,000~10,000원대로 낮춘다.
- '시간을 X시에' → 해당 구간 시작 시간을 X시로 바꾸고, 종료 시각도 기존 소요시간을 유지하도록 조정한다.
- 예산 관련 요청은 해당 라인의 '약 xx,xxx원' 숫자도 일관되게 조정.
- 수정이 없으면 updated_itinerary에 원문을 그대로 넣는다.`

	SystemRecommend = "당신은 한국어로 답하는 여행지/맛집 추천 전문가입니다."
)

func joinOr(vals []string, fallback string) string {
	cleaned := make([]string, 0, len(vals))
	for _, v := range vals {
		if v = strings.TrimSpace(v); v != "" {
			cleaned = append(cleaned, v)
		}
	}
	if len(cleaned) == 0 {
		return fallback
	}
	return strings.Join(cleaned, ", ")
}

// BuildPlanPrompt renders the hard-rules itinerary prompt: canonical
// daily slots, date headers, no placeholders, no duplicate places, one
// closing total within the budget band.
func BuildPlanPrompt(req request_models.ScheduleRequest) string {
	style := strings.TrimSpace(req.Style)
	if style == "" {
		style = "자유 여행"
	}

	start, err := time.Parse("2006-01-02", strings.TrimSpace(req.TravelDate))
	if err != nil {
		start = time.Now()
	}

	var dateList, dateOnly []string
	for i := 0; i < req.Days; i++ {
		d := start.AddDate(0, 0, i)
		dateList = append(dateList, d.Format("2006-01-02 (Mon)"))
		dateOnly = append(dateOnly, d.Format("2006-01-02"))
	}

	sel := "없음"
	if len(req.SelectedPlaces) > 0 {
		var b strings.Builder
		for _, p := range req.SelectedPlaces {
			if p = strings.TrimSpace(p); p != "" {
				fmt.Fprintf(&b, "- %s\n", p)
			}
		}
		if s := strings.TrimRight(b.String(), "\n"); s != "" {
			sel = s
		}
	}

	dateLines := "- " + strings.Join(dateList, "\n- ")

	count := req.Count
	if count <= 0 {
		count = 3
	}

	return strings.TrimSpace(fmt.Sprintf(`너는 여행 일정 전문가다. 아래의 **하드 규칙**을 100%% 준수하며 **%d개의 서로 다른 일정안**을 한 번에 작성하라.
출력은 **순수 텍스트**만 사용한다. (마크다운/코드블록/표/불릿 금지)

[입력]
- 여행지: %s
- 여행일수: %d일
- 여행 시작일: %s
- 동반자: %s
- 여행 스타일: %s
- 총 예산: %s원
- 사용자 선택 장소(있으면 '각각 1회만' 반영):
%s
- 날짜 전체:
%s

[상위 제목 형식]
각 일정안은 다음 제목으로 시작한다(번호 필수).
- 일정추천 1: %s %d일 코스
- 일정추천 2: %s %d일 코스
... (요청 개수만큼)
각 일정안 사이는 **한 줄에 '---'** 만 넣어 구분한다.

[하드 규칙]
1) 날짜 헤더
   - 각 날짜는 헤더로 시작: "YYYY-MM-DD (DayN)"
   - 모든 날짜 헤더가 반드시 본문에 존재해야 한다: %s
   - 헤더 아래에 바로 시간 라인이 이어지고, 헤더/시간 순서를 절대 바꾸지 말 것.

2) 하루 슬롯(정확히 5줄, 시간 오름차순 고정)
   08:00 ~ 09:30 아침: <상호명> (<도로명 주소>) (약 <원>)
   09:30 ~ 12:00 <관광/명소 상호명> (<도로명 주소>) (약 <원>)
   12:00 ~ 13:30 점심: <상호명> (<도로명 주소>) (약 <원>)
   14:00 ~ 18:00 <관광/명소 상호명> (<도로명 주소>) (약 <원>)
   19:00 ~ 20:30 저녁: <상호명> (<도로명 주소>) (약 <원>)
   - 위 5개 시간대는 **모든 날짜에서 반드시 그대로 사용**한다(시간 겹침 금지).

3) 플레이스홀더 금지
   - "주요명소/관광지/체험/카페/휴식" 같은 추상어만 쓰지 말 것.
   - 각 라인은 **실제 상호명 + '도로명 주소'**를 괄호로 적는다.
     예) "부산현대미술관 (부산광역시 강서구 낙동남로 1191)"

4) 장소 중복 금지(한 일정안 전체 기준)
   - 같은 '핵심명'(괄호 앞 이름에서 '아침/점심/저녁/브런치/런치/디너' 같은 라벨 제거 후)을
     **그 일정안 전체에서 단 한 번만** 사용한다(다른 날이라도 중복 금지).
   - 체인점은 지점까지 포함해 핵심명을 구분한다(예: "OO커피 부산역점"과 "OO커피 서면점"은 다른 곳).
   - 사용자가 지정한 장소가 있으면 **각각 정확히 1회만** 배치한다.

5) 비용 표기
   - **모든 시간 라인 끝**에 " (약 xx,xxx원)" 형식으로 비용을 표기한다(무료면 0원 표기).
   - **총 예상 비용 문구는 일정안 맨 마지막에 1회만** 작성한다.
   - 총액은 입력 예산의 **±15%% 범위** 내에서 합리적으로 배분한다.
   - 총비용은 활동별 비용의 합과 일치해야 한다.

6) 동선은 합리적으로(과도한 왕복/이동 금지), 실내·실외 균형.

[내부 검증 체크리스트(모델이 스스로 확인 후 위반 시 수정할 것)]
- 모든 날짜 헤더가 존재하는가? 헤더 바로 아래에 시간 라인이 왔는가?
- 모든 날짜가 정확히 5개의 시간대 라인을 갖고, 시간이 오름차순인가?
- 플레이스홀더 없이 모든 라인이 실제 상호+도로명 주소를 갖는가?
- '핵심명'이 그 일정안 전체에서 단 한 번씩만 등장하는가? (중복이면 다른 실제 장소로 교체)
- 총비용 문구가 맨 끝에 1회만 있고, 활동비 합과 일치하는가?`,
		count,
		req.Location, req.Days, dateList[0],
		joinOr(req.Companions, "없음"), style, itinerary.FormatWon(req.Budget),
		sel, dateLines,
		req.Location, req.Days, req.Location, req.Days,
		strings.Join(dateOnly, ", ")))
}

// BuildRecommendPrompt asks for five attractions and five restaurants
// as numbered lists under fixed section headers so the extractor can
// split them.
func BuildRecommendPrompt(req request_models.RecommendRequest) string {
	days := len(req.Dates)
	if days == 0 {
		days = 3
	}
	return strings.TrimSpace(fmt.Sprintf(`사용자가 여행을 계획하고 있습니다. 아래 정보를 모두 고려하여 **관광지 5곳**과 **맛집 5곳**을 추천해 주세요.

[사용자 정보]
- 여행지: %s
- 여행 기간: %d일
- 예산: %s원
- 여행 스타일: %s
- 동반자: %s

[요청 사항]
- 관광지와 음식점은 구체적인 장소명으로 추천해 주세요. (예: 정동진 해수욕장, 교동짬뽕 본점)
- 추천은 numbered list 형식으로 제공해 주세요.
- 관광지와 음식점은 따로 구분해 주세요.

[출력 예시]
관광지 추천:
1. 장소명 - 간단한 설명

맛집 추천:
1. 장소명 - 간단한 설명`,
		req.Destination, days, itinerary.FormatWon(req.Budget),
		joinOr(req.Styles, "자유 여행"), joinOr(req.Companions, "없음")))
}

// BuildChatUserPrompt packages the edit request the way the editor
// system prompt expects it.
func BuildChatUserPrompt(req request_models.ChatRequest) string {
	body := req.ItineraryText
	if strings.TrimSpace(body) == "" {
		body = "(없음)"
	}
	budget := "알 수 없음"
	if req.Context != nil && req.Context.Budget > 0 {
		budget = itinerary.FormatWon(req.Context.Budget)
	}
	return fmt.Sprintf("[선택 인덱스] %d\n\n[현재 일정]\n%s\n\n[사용자 요청]\n%s\n\n[예산]\n%s",
		req.ItineraryIndex, body, req.Message, budget)
}
