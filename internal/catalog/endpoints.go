package catalog

// Helpers keeping the descriptor table compact. Every entry below is data;
// the dispatch pipeline never branches on a specific tool name.

func pathParam(name, typ string) Param {
	return Param{Name: name, In: InPath, Required: true, Type: typ}
}

func query(name, typ string) Param {
	return Param{Name: name, In: InQuery, Type: typ}
}

func queryReq(name, typ string) Param {
	return Param{Name: name, In: InQuery, Required: true, Type: typ}
}

func body(name, typ string) Param {
	return Param{Name: name, In: InBody, Type: typ}
}

func bodyReq(name, typ string) Param {
	return Param{Name: name, In: InBody, Required: true, Type: typ}
}

// offsetPage is the query parameter pair shared by offset-paginated lists.
func offsetPage() []Param {
	return []Param{query("start", "integer"), query("limit", "integer")}
}

// cursorPage is the query parameter pair shared by cursor-paginated lists.
func cursorPage() []Param {
	return []Param{query("cursor", "string"), query("limit", "integer")}
}

func withPage(page []Param, extra ...Param) []Param {
	return append(extra, page...)
}

// descriptors is the full endpoint table. Path + HTTP method are
// authoritative for what each tool does. All tools require OAuth except
// where noted.
var descriptors = []Descriptor{
	// --- Activities ---
	{Tool: "activities_get_all", Method: "GET", Path: "/v1/activities", AuthRequired: true, Pagination: PageOffset,
		Params:      withPage(offsetPage(), query("user_id", "integer"), query("filter_id", "integer"), query("type", "string"), query("start_date", "string"), query("end_date", "string"), query("done", "integer")),
		Description: "Returns all activities assigned to a particular user."},
	{Tool: "activities_get_details", Method: "GET", Path: "/v1/activities/{id}", AuthRequired: true,
		Params:      []Param{pathParam("id", "integer")},
		Description: "Returns the details of a specific activity."},
	{Tool: "activities_add", Method: "POST", Path: "/v1/activities", AuthRequired: true, Body: BodyObject,
		Params:      []Param{bodyReq("subject", "string"), bodyReq("type", "string"), body("due_date", "string"), body("due_time", "string"), body("duration", "string"), body("deal_id", "integer"), body("person_id", "integer"), body("org_id", "integer"), body("note", "string"), body("done", "integer"), body("participants", "array")},
		Description: "Adds a new activity."},
	{Tool: "activities_update", Method: "PUT", Path: "/v1/activities/{id}", AuthRequired: true, Body: BodyObject,
		Params:      []Param{pathParam("id", "integer"), body("subject", "string"), body("type", "string"), body("due_date", "string"), body("due_time", "string"), body("duration", "string"), body("deal_id", "integer"), body("person_id", "integer"), body("org_id", "integer"), body("note", "string"), body("done", "integer")},
		Description: "Updates an activity."},
	{Tool: "activities_delete", Method: "DELETE", Path: "/v1/activities/{id}", AuthRequired: true,
		Params:      []Param{pathParam("id", "integer")},
		Description: "Deletes an activity."},
	{Tool: "activities_delete_bulk", Method: "DELETE", Path: "/v1/activities", AuthRequired: true,
		Params:      []Param{queryReq("ids", "array")},
		Description: "Deletes multiple activities in bulk by comma-separated IDs."},
	{Tool: "activities_get_collection", Method: "GET", Path: "/v1/activities/collection", AuthRequired: true, Pagination: PageCursor,
		Params:      withPage(cursorPage(), query("since", "string"), query("until", "string"), query("user_id", "integer"), query("done", "boolean"), query("type", "string")),
		Description: "Returns all activities, cursor-paginated."},

	// --- Activity fields and types ---
	{Tool: "activity_fields_get_all", Method: "GET", Path: "/v1/activityFields", AuthRequired: true,
		Description: "Returns all activity fields."},
	{Tool: "activity_types_get_all", Method: "GET", Path: "/v1/activityTypes", AuthRequired: true,
		Description: "Returns all activity types defined in the company."},
	{Tool: "activity_types_add", Method: "POST", Path: "/v1/activityTypes", AuthRequired: true, Body: BodyObject,
		Params:      []Param{bodyReq("name", "string"), bodyReq("icon_key", "string"), body("color", "string")},
		Description: "Adds a new activity type."},
	{Tool: "activity_types_update", Method: "PUT", Path: "/v1/activityTypes/{id}", AuthRequired: true, Body: BodyObject,
		Params:      []Param{pathParam("id", "integer"), body("name", "string"), body("icon_key", "string"), body("color", "string"), body("order_nr", "integer")},
		Description: "Updates an activity type."},
	{Tool: "activity_types_delete", Method: "DELETE", Path: "/v1/activityTypes/{id}", AuthRequired: true,
		Params:      []Param{pathParam("id", "integer")},
		Description: "Deletes an activity type."},
	{Tool: "activity_types_delete_bulk", Method: "DELETE", Path: "/v1/activityTypes", AuthRequired: true,
		Params:      []Param{queryReq("ids", "array")},
		Description: "Deletes multiple activity types in bulk."},

	// --- Call logs ---
	{Tool: "call_logs_get_all", Method: "GET", Path: "/v1/callLogs", AuthRequired: true, Pagination: PageOffset,
		Params:      offsetPage(),
		Description: "Returns all call logs assigned to a particular user."},
	{Tool: "call_logs_get_details", Method: "GET", Path: "/v1/callLogs/{id}", AuthRequired: true,
		Params:      []Param{pathParam("id", "string")},
		Description: "Returns the details of a specific call log."},
	{Tool: "call_logs_add", Method: "POST", Path: "/v1/callLogs", AuthRequired: true, Body: BodyObject,
		Params:      []Param{bodyReq("outcome", "string"), bodyReq("to_phone_number", "string"), bodyReq("start_time", "string"), bodyReq("end_time", "string"), body("user_id", "integer"), body("activity_id", "integer"), body("subject", "string"), body("duration", "string"), body("from_phone_number", "string"), body("person_id", "integer"), body("org_id", "integer"), body("deal_id", "integer"), body("lead_id", "string"), body("note", "string")},
		Description: "Adds a new call log."},
	{Tool: "call_logs_delete", Method: "DELETE", Path: "/v1/callLogs/{id}", AuthRequired: true,
		Params:      []Param{pathParam("id", "string")},
		Description: "Deletes a call log."},
	{Tool: "call_logs_add_recording", Method: "POST", Path: "/v1/callLogs/{id}/recordings", AuthRequired: true, Body: BodyMultipart,
		Params:      []Param{pathParam("id", "string"), bodyReq("file", "file")},
		Description: "Attaches an audio recording to a call log."},

	// --- Currencies ---
	{Tool: "currencies_get_all", Method: "GET", Path: "/v1/currencies", AuthRequired: true,
		Params:      []Param{query("term", "string")},
		Description: "Returns all supported currencies, optionally filtered by term."},

	// --- Deals ---
	{Tool: "deals_get_all", Method: "GET", Path: "/v1/deals", AuthRequired: true, Pagination: PageOffset,
		Params:      withPage(offsetPage(), query("user_id", "integer"), query("filter_id", "integer"), query("stage_id", "integer"), query("status", "string"), query("sort", "string"), query("owned_by_you", "integer")),
		Description: "Returns all deals."},
	{Tool: "deals_get_details", Method: "GET", Path: "/v1/deals/{id}", AuthRequired: true,
		Params:      []Param{pathParam("id", "integer")},
		Description: "Returns the details of a specific deal."},
	{Tool: "deals_add", Method: "POST", Path: "/v1/deals", AuthRequired: true, Body: BodyObject,
		Params:      []Param{bodyReq("title", "string"), body("value", "string"), body("currency", "string"), body("user_id", "integer"), body("person_id", "integer"), body("org_id", "integer"), body("pipeline_id", "integer"), body("stage_id", "integer"), body("status", "string"), body("expected_close_date", "string"), body("probability", "number"), body("lost_reason", "string"), body("visible_to", "string"), body("add_time", "string")},
		Description: "Adds a new deal."},
	{Tool: "deals_update", Method: "PUT", Path: "/v1/deals/{id}", AuthRequired: true, Body: BodyObject,
		Params:      []Param{pathParam("id", "integer"), body("title", "string"), body("value", "string"), body("currency", "string"), body("user_id", "integer"), body("person_id", "integer"), body("org_id", "integer"), body("pipeline_id", "integer"), body("stage_id", "integer"), body("status", "string"), body("expected_close_date", "string"), body("probability", "number"), body("lost_reason", "string"), body("visible_to", "string")},
		Description: "Updates the properties of a deal."},
	{Tool: "deals_delete", Method: "DELETE", Path: "/v1/deals/{id}", AuthRequired: true,
		Params:      []Param{pathParam("id", "integer")},
		Description: "Marks a deal as deleted."},
	{Tool: "deals_delete_bulk", Method: "DELETE", Path: "/v1/deals", AuthRequired: true,
		Params:      []Param{queryReq("ids", "array")},
		Description: "Marks multiple deals as deleted by comma-separated IDs."},
	{Tool: "deals_duplicate", Method: "POST", Path: "/v1/deals/{id}/duplicate", AuthRequired: true,
		Params:      []Param{pathParam("id", "integer")},
		Description: "Duplicates a deal."},
	{Tool: "deals_merge", Method: "PUT", Path: "/v1/deals/{id}/merge", AuthRequired: true, Body: BodyObject,
		Params:      []Param{pathParam("id", "integer"), bodyReq("merge_with_id", "integer")},
		Description: "Merges a deal with another deal."},
	{Tool: "deals_search", Method: "GET", Path: "/v1/deals/search", AuthRequired: true, Pagination: PageOffset,
		Params:      withPage(offsetPage(), queryReq("term", "string"), query("fields", "string"), query("exact_match", "boolean"), query("person_id", "integer"), query("organization_id", "integer"), query("status", "string"), query("include_fields", "string")),
		Description: "Searches all deals by title, notes or custom fields."},
	{Tool: "deals_get_collection", Method: "GET", Path: "/v1/deals/collection", AuthRequired: true, Pagination: PageCursor,
		Params:      withPage(cursorPage(), query("since", "string"), query("until", "string"), query("user_id", "integer"), query("stage_id", "integer"), query("status", "string")),
		Description: "Returns all deals, cursor-paginated."},
	{Tool: "deals_get_summary", Method: "GET", Path: "/v1/deals/summary", AuthRequired: true,
		Params:      []Param{query("status", "string"), query("filter_id", "integer"), query("user_id", "integer"), query("stage_id", "integer")},
		Description: "Returns a summary of all deals."},
	{Tool: "deals_get_timeline", Method: "GET", Path: "/v1/deals/timeline", AuthRequired: true,
		Params:      []Param{queryReq("start_date", "string"), queryReq("interval", "string"), queryReq("amount", "integer"), queryReq("field_key", "string"), query("user_id", "integer"), query("pipeline_id", "integer"), query("filter_id", "integer"), query("exclude_deals", "integer"), query("totals_convert_currency", "string")},
		Description: "Returns open and won deals grouped by a defined interval of time."},
	{Tool: "deals_list_activities", Method: "GET", Path: "/v1/deals/{id}/activities", AuthRequired: true, Pagination: PageOffset,
		Params:      withPage(offsetPage(), pathParam("id", "integer"), query("done", "integer"), query("exclude", "string")),
		Description: "Lists activities associated with a deal."},
	{Tool: "deals_list_files", Method: "GET", Path: "/v1/deals/{id}/files", AuthRequired: true, Pagination: PageOffset,
		Params:      withPage(offsetPage(), pathParam("id", "integer"), query("sort", "string")),
		Description: "Lists files associated with a deal."},
	{Tool: "deals_list_updates", Method: "GET", Path: "/v1/deals/{id}/flow", AuthRequired: true, Pagination: PageOffset,
		Params:      withPage(offsetPage(), pathParam("id", "integer"), query("all_changes", "string"), query("items", "string")),
		Description: "Lists updates about a deal."},
	{Tool: "deals_list_followers", Method: "GET", Path: "/v1/deals/{id}/followers", AuthRequired: true,
		Params:      []Param{pathParam("id", "integer")},
		Description: "Lists the followers of a deal."},
	{Tool: "deals_add_follower", Method: "POST", Path: "/v1/deals/{id}/followers", AuthRequired: true, Body: BodyObject,
		Params:      []Param{pathParam("id", "integer"), bodyReq("user_id", "integer")},
		Description: "Adds a follower to a deal."},
	{Tool: "deals_delete_follower", Method: "DELETE", Path: "/v1/deals/{id}/followers/{follower_id}", AuthRequired: true,
		Params:      []Param{pathParam("id", "integer"), pathParam("follower_id", "integer")},
		Description: "Deletes a follower from a deal."},
	{Tool: "deals_list_mail_messages", Method: "GET", Path: "/v1/deals/{id}/mailMessages", AuthRequired: true, Pagination: PageOffset,
		Params:      withPage(offsetPage(), pathParam("id", "integer")),
		Description: "Lists mail messages associated with a deal."},
	{Tool: "deals_list_participants", Method: "GET", Path: "/v1/deals/{id}/participants", AuthRequired: true, Pagination: PageOffset,
		Params:      withPage(offsetPage(), pathParam("id", "integer")),
		Description: "Lists the participants of a deal."},
	{Tool: "deals_add_participant", Method: "POST", Path: "/v1/deals/{id}/participants", AuthRequired: true, Body: BodyObject,
		Params:      []Param{pathParam("id", "integer"), bodyReq("person_id", "integer")},
		Description: "Adds a participant to a deal."},
	{Tool: "deals_delete_participant", Method: "DELETE", Path: "/v1/deals/{id}/participants/{deal_participant_id}", AuthRequired: true,
		Params:      []Param{pathParam("id", "integer"), pathParam("deal_participant_id", "integer")},
		Description: "Deletes a participant from a deal."},
	{Tool: "deals_list_permitted_users", Method: "GET", Path: "/v1/deals/{id}/permittedUsers", AuthRequired: true,
		Params:      []Param{pathParam("id", "integer")},
		Description: "Lists users permitted to access a deal."},
	{Tool: "deals_list_persons", Method: "GET", Path: "/v1/deals/{id}/persons", AuthRequired: true, Pagination: PageOffset,
		Params:      withPage(offsetPage(), pathParam("id", "integer")),
		Description: "Lists all persons associated with a deal."},
	{Tool: "deals_list_products", Method: "GET", Path: "/v1/deals/{id}/products", AuthRequired: true, Pagination: PageOffset,
		Params:      withPage(offsetPage(), pathParam("id", "integer"), query("include_product_data", "integer")),
		Description: "Lists products attached to a deal."},
	{Tool: "deals_add_product", Method: "POST", Path: "/v1/deals/{id}/products", AuthRequired: true, Body: BodyObject,
		Params:      []Param{pathParam("id", "integer"), bodyReq("product_id", "integer"), bodyReq("item_price", "number"), bodyReq("quantity", "integer"), body("discount_percentage", "number"), body("duration", "number"), body("product_variation_id", "integer"), body("comments", "string"), body("enabled_flag", "integer")},
		Description: "Adds a product to a deal."},
	{Tool: "deals_update_product", Method: "PUT", Path: "/v1/deals/{id}/products/{product_attachment_id}", AuthRequired: true, Body: BodyObject,
		Params:      []Param{pathParam("id", "integer"), pathParam("product_attachment_id", "integer"), body("item_price", "number"), body("quantity", "integer"), body("discount_percentage", "number"), body("duration", "number"), body("comments", "string"), body("enabled_flag", "integer")},
		Description: "Updates the details of a product attached to a deal."},
	{Tool: "deals_delete_product", Method: "DELETE", Path: "/v1/deals/{id}/products/{product_attachment_id}", AuthRequired: true,
		Params:      []Param{pathParam("id", "integer"), pathParam("product_attachment_id", "integer")},
		Description: "Deletes a product attachment from a deal."},

	// --- Deal fields ---
	{Tool: "deal_fields_get_all", Method: "GET", Path: "/v1/dealFields", AuthRequired: true, Pagination: PageOffset,
		Params:      offsetPage(),
		Description: "Returns data about all deal fields."},
	{Tool: "deal_fields_get_details", Method: "GET", Path: "/v1/dealFields/{id}", AuthRequired: true,
		Params:      []Param{pathParam("id", "integer")},
		Description: "Returns data about a specific deal field."},
	{Tool: "deal_fields_add", Method: "POST", Path: "/v1/dealFields", AuthRequired: true, Body: BodyObject,
		Params:      []Param{bodyReq("name", "string"), bodyReq("field_type", "string"), body("options", "array"), body("add_visible_flag", "boolean")},
		Description: "Adds a new deal field."},
	{Tool: "deal_fields_update", Method: "PUT", Path: "/v1/dealFields/{id}", AuthRequired: true, Body: BodyObject,
		Params:      []Param{pathParam("id", "integer"), body("name", "string"), body("options", "array"), body("add_visible_flag", "boolean")},
		Description: "Updates a deal field."},
	{Tool: "deal_fields_delete", Method: "DELETE", Path: "/v1/dealFields/{id}", AuthRequired: true,
		Params:      []Param{pathParam("id", "integer")},
		Description: "Marks a deal field as deleted."},
	{Tool: "deal_fields_delete_bulk", Method: "DELETE", Path: "/v1/dealFields", AuthRequired: true,
		Params:      []Param{queryReq("ids", "array")},
		Description: "Marks multiple deal fields as deleted in bulk."},

	// --- Files ---
	{Tool: "files_get_all", Method: "GET", Path: "/v1/files", AuthRequired: true, Pagination: PageOffset,
		Params:      withPage(offsetPage(), query("sort", "string")),
		Description: "Returns data about all files."},
	{Tool: "files_get_details", Method: "GET", Path: "/v1/files/{id}", AuthRequired: true,
		Params:      []Param{pathParam("id", "integer")},
		Description: "Returns data about a specific file."},
	{Tool: "files_download", Method: "GET", Path: "/v1/files/{id}/download", AuthRequired: true, BinaryResponse: true,
		Params:      []Param{pathParam("id", "integer")},
		Description: "Initializes a file download; the response body is the raw file stream."},
	{Tool: "files_add", Method: "POST", Path: "/v1/files", AuthRequired: true, Body: BodyMultipart,
		Params:      []Param{bodyReq("file", "file"), body("deal_id", "integer"), body("person_id", "integer"), body("org_id", "integer"), body("product_id", "integer"), body("activity_id", "integer")},
		Description: "Uploads a file and associates it with a deal, person, organization, activity or product."},
	{Tool: "files_add_remote", Method: "POST", Path: "/v1/files/remote", AuthRequired: true, Body: BodyObject,
		Params:      []Param{bodyReq("file_type", "string"), bodyReq("title", "string"), bodyReq("item_type", "string"), bodyReq("item_id", "integer"), bodyReq("remote_location", "string")},
		Description: "Creates a new empty file in the remote location (googledrive)."},
	{Tool: "files_link_remote", Method: "POST", Path: "/v1/files/remoteLink", AuthRequired: true, Body: BodyObject,
		Params:      []Param{bodyReq("item_type", "string"), bodyReq("item_id", "integer"), bodyReq("remote_id", "string"), bodyReq("remote_location", "string")},
		Description: "Links an existing remote file to an item."},
	{Tool: "files_update", Method: "PUT", Path: "/v1/files/{id}", AuthRequired: true, Body: BodyObject,
		Params:      []Param{pathParam("id", "integer"), body("name", "string"), body("description", "string")},
		Description: "Updates the properties of a file."},
	{Tool: "files_delete", Method: "DELETE", Path: "/v1/files/{id}", AuthRequired: true,
		Params:      []Param{pathParam("id", "integer")},
		Description: "Marks a file as deleted."},

	// --- Filters ---
	{Tool: "filters_get_all", Method: "GET", Path: "/v1/filters", AuthRequired: true,
		Params:      []Param{query("type", "string")},
		Description: "Returns data about all filters."},
	{Tool: "filters_get_details", Method: "GET", Path: "/v1/filters/{id}", AuthRequired: true,
		Params:      []Param{pathParam("id", "integer")},
		Description: "Returns data about a specific filter, including its conditions."},
	{Tool: "filters_get_helpers", Method: "GET", Path: "/v1/filters/helpers", AuthRequired: true,
		Description: "Returns all supported filter helpers."},
	{Tool: "filters_add", Method: "POST", Path: "/v1/filters", AuthRequired: true, Body: BodyObject,
		Params:      []Param{bodyReq("name", "string"), bodyReq("conditions", "object"), bodyReq("type", "string")},
		Description: "Adds a new filter."},
	{Tool: "filters_update", Method: "PUT", Path: "/v1/filters/{id}", AuthRequired: true, Body: BodyObject,
		Params:      []Param{pathParam("id", "integer"), bodyReq("conditions", "object"), body("name", "string")},
		Description: "Updates an existing filter."},
	{Tool: "filters_delete", Method: "DELETE", Path: "/v1/filters/{id}", AuthRequired: true,
		Params:      []Param{pathParam("id", "integer")},
		Description: "Marks a filter as deleted."},
	{Tool: "filters_delete_bulk", Method: "DELETE", Path: "/v1/filters", AuthRequired: true,
		Params:      []Param{queryReq("ids", "array")},
		Description: "Marks multiple filters as deleted in bulk."},

	// --- Goals ---
	{Tool: "goals_add", Method: "POST", Path: "/v1/goals", AuthRequired: true, Body: BodyObject,
		Params:      []Param{bodyReq("type", "object"), bodyReq("assignee", "object"), bodyReq("expected_outcome", "object"), bodyReq("duration", "object"), bodyReq("interval", "string"), body("title", "string")},
		Description: "Adds a new goal."},
	{Tool: "goals_find", Method: "GET", Path: "/v1/goals/find", AuthRequired: true,
		Params:      []Param{query("type.name", "string"), query("title", "string"), query("is_active", "boolean"), query("assignee.id", "integer"), query("assignee.type", "string"), query("expected_outcome.target", "number"), query("expected_outcome.tracking_metric", "string"), query("period.start", "string"), query("period.end", "string")},
		Description: "Returns data about goals based on criteria."},
	{Tool: "goals_update", Method: "PUT", Path: "/v1/goals/{id}", AuthRequired: true, Body: BodyObject,
		Params:      []Param{pathParam("id", "string"), body("title", "string"), body("assignee", "object"), body("type", "object"), body("expected_outcome", "object"), body("duration", "object"), body("interval", "string")},
		Description: "Updates an existing goal."},
	{Tool: "goals_delete", Method: "DELETE", Path: "/v1/goals/{id}", AuthRequired: true,
		Params:      []Param{pathParam("id", "string")},
		Description: "Marks a goal as deleted."},
	{Tool: "goals_get_result", Method: "GET", Path: "/v1/goals/{id}/results", AuthRequired: true,
		Params:      []Param{pathParam("id", "string"), queryReq("period.start", "string"), queryReq("period.end", "string")},
		Description: "Gets the progress of a goal for the specified period."},

	// --- Item search ---
	{Tool: "item_search", Method: "GET", Path: "/v1/itemSearch", AuthRequired: true, Pagination: PageOffset,
		Params:      withPage(offsetPage(), queryReq("term", "string"), query("item_types", "string"), query("fields", "string"), query("search_for_related_items", "boolean"), query("exact_match", "boolean"), query("include_fields", "string")),
		Description: "Performs a search from multiple item types."},
	{Tool: "item_search_field", Method: "GET", Path: "/v1/itemSearch/field", AuthRequired: true, Pagination: PageOffset,
		Params:      withPage(offsetPage(), queryReq("term", "string"), queryReq("field_type", "string"), queryReq("field_key", "string"), query("exact_match", "boolean"), query("return_item_ids", "boolean")),
		Description: "Searches from the values of a specific field."},

	// --- Leads ---
	{Tool: "leads_get_all", Method: "GET", Path: "/v1/leads", AuthRequired: true, Pagination: PageOffset,
		Params:      withPage(offsetPage(), query("archived_status", "string"), query("owner_id", "integer"), query("person_id", "integer"), query("organization_id", "integer"), query("filter_id", "integer"), query("sort", "string")),
		Description: "Returns multiple leads."},
	{Tool: "leads_get_details", Method: "GET", Path: "/v1/leads/{id}", AuthRequired: true,
		Params:      []Param{pathParam("id", "string")},
		Description: "Returns details of a specific lead."},
	{Tool: "leads_add", Method: "POST", Path: "/v1/leads", AuthRequired: true, Body: BodyObject,
		Params:      []Param{bodyReq("title", "string"), body("owner_id", "integer"), body("label_ids", "array"), body("person_id", "integer"), body("organization_id", "integer"), body("value", "object"), body("expected_close_date", "string"), body("visible_to", "string")},
		Description: "Creates a lead. A lead needs a person or an organization linked to it."},
	{Tool: "leads_update", Method: "PATCH", Path: "/v1/leads/{id}", AuthRequired: true, Body: BodyObject,
		Params:      []Param{pathParam("id", "string"), body("title", "string"), body("owner_id", "integer"), body("label_ids", "array"), body("person_id", "integer"), body("organization_id", "integer"), body("is_archived", "boolean"), body("value", "object"), body("expected_close_date", "string"), body("visible_to", "string")},
		Description: "Updates one or more properties of a lead."},
	{Tool: "leads_delete", Method: "DELETE", Path: "/v1/leads/{id}", AuthRequired: true,
		Params:      []Param{pathParam("id", "string")},
		Description: "Deletes a specific lead."},
	{Tool: "leads_search", Method: "GET", Path: "/v1/leads/search", AuthRequired: true, Pagination: PageOffset,
		Params:      withPage(offsetPage(), queryReq("term", "string"), query("fields", "string"), query("exact_match", "boolean"), query("person_id", "integer"), query("organization_id", "integer"), query("include_fields", "string")),
		Description: "Searches all leads by title, notes or custom fields."},
	{Tool: "lead_labels_get_all", Method: "GET", Path: "/v1/leadLabels", AuthRequired: true,
		Description: "Returns details of all lead labels."},
	{Tool: "lead_labels_add", Method: "POST", Path: "/v1/leadLabels", AuthRequired: true, Body: BodyObject,
		Params:      []Param{bodyReq("name", "string"), bodyReq("color", "string")},
		Description: "Creates a lead label."},
	{Tool: "lead_labels_update", Method: "PATCH", Path: "/v1/leadLabels/{id}", AuthRequired: true, Body: BodyObject,
		Params:      []Param{pathParam("id", "string"), body("name", "string"), body("color", "string")},
		Description: "Updates one or more properties of a lead label."},
	{Tool: "lead_labels_delete", Method: "DELETE", Path: "/v1/leadLabels/{id}", AuthRequired: true,
		Params:      []Param{pathParam("id", "string")},
		Description: "Deletes a specific lead label."},
	{Tool: "lead_sources_get_all", Method: "GET", Path: "/v1/leadSources", AuthRequired: true,
		Description: "Returns all lead sources."},

	// --- Mailbox ---
	{Tool: "mailbox_get_message", Method: "GET", Path: "/v1/mailbox/mailMessages/{id}", AuthRequired: true,
		Params:      []Param{pathParam("id", "integer"), query("include_body", "integer")},
		Description: "Returns data about a specific mail message."},
	{Tool: "mailbox_get_threads", Method: "GET", Path: "/v1/mailbox/mailThreads", AuthRequired: true, Pagination: PageOffset,
		Params:      withPage(offsetPage(), queryReq("folder", "string")),
		Description: "Returns mail threads in a specified folder."},
	{Tool: "mailbox_get_thread", Method: "GET", Path: "/v1/mailbox/mailThreads/{id}", AuthRequired: true,
		Params:      []Param{pathParam("id", "integer")},
		Description: "Returns a specific mail thread."},
	{Tool: "mailbox_update_thread", Method: "PUT", Path: "/v1/mailbox/mailThreads/{id}", AuthRequired: true, Body: BodyObject,
		Params:      []Param{pathParam("id", "integer"), body("deal_id", "integer"), body("lead_id", "string"), body("shared_flag", "integer"), body("read_flag", "integer"), body("archived_flag", "integer")},
		Description: "Updates the properties of a mail thread."},
	{Tool: "mailbox_delete_thread", Method: "DELETE", Path: "/v1/mailbox/mailThreads/{id}", AuthRequired: true,
		Params:      []Param{pathParam("id", "integer")},
		Description: "Marks a mail thread as deleted."},
	{Tool: "mailbox_get_thread_messages", Method: "GET", Path: "/v1/mailbox/mailThreads/{id}/mailMessages", AuthRequired: true,
		Params:      []Param{pathParam("id", "integer")},
		Description: "Returns all the mail messages inside a mail thread."},

	// --- Notes ---
	{Tool: "notes_get_all", Method: "GET", Path: "/v1/notes", AuthRequired: true, Pagination: PageOffset,
		Params:      withPage(offsetPage(), query("user_id", "integer"), query("deal_id", "integer"), query("person_id", "integer"), query("org_id", "integer"), query("lead_id", "string"), query("sort", "string"), query("start_date", "string"), query("end_date", "string"), query("pinned_to_deal_flag", "integer"), query("pinned_to_person_flag", "integer"), query("pinned_to_organization_flag", "integer")),
		Description: "Returns all notes."},
	{Tool: "notes_get_details", Method: "GET", Path: "/v1/notes/{id}", AuthRequired: true,
		Params:      []Param{pathParam("id", "integer")},
		Description: "Returns details about a specific note."},
	{Tool: "notes_add", Method: "POST", Path: "/v1/notes", AuthRequired: true, Body: BodyObject,
		Params:      []Param{bodyReq("content", "string"), body("deal_id", "integer"), body("person_id", "integer"), body("org_id", "integer"), body("lead_id", "string"), body("user_id", "integer"), body("add_time", "string"), body("pinned_to_deal_flag", "integer"), body("pinned_to_person_flag", "integer"), body("pinned_to_organization_flag", "integer")},
		Description: "Adds a new note."},
	{Tool: "notes_update", Method: "PUT", Path: "/v1/notes/{id}", AuthRequired: true, Body: BodyObject,
		Params:      []Param{pathParam("id", "integer"), body("content", "string"), body("deal_id", "integer"), body("person_id", "integer"), body("org_id", "integer"), body("lead_id", "string"), body("user_id", "integer"), body("pinned_to_deal_flag", "integer"), body("pinned_to_person_flag", "integer"), body("pinned_to_organization_flag", "integer")},
		Description: "Updates a note."},
	{Tool: "notes_delete", Method: "DELETE", Path: "/v1/notes/{id}", AuthRequired: true,
		Params:      []Param{pathParam("id", "integer")},
		Description: "Deletes a specific note."},
	{Tool: "notes_list_comments", Method: "GET", Path: "/v1/notes/{id}/comments", AuthRequired: true, Pagination: PageOffset,
		Params:      withPage(offsetPage(), pathParam("id", "integer")),
		Description: "Returns all comments associated with a note."},
	{Tool: "notes_add_comment", Method: "POST", Path: "/v1/notes/{id}/comments", AuthRequired: true, Body: BodyObject,
		Params:      []Param{pathParam("id", "integer"), bodyReq("content", "string")},
		Description: "Adds a new comment to a note."},
	{Tool: "notes_get_comment", Method: "GET", Path: "/v1/notes/{id}/comments/{commentId}", AuthRequired: true,
		Params:      []Param{pathParam("id", "integer"), pathParam("commentId", "string")},
		Description: "Returns the details of a comment."},
	{Tool: "notes_update_comment", Method: "PUT", Path: "/v1/notes/{id}/comments/{commentId}", AuthRequired: true, Body: BodyObject,
		Params:      []Param{pathParam("id", "integer"), pathParam("commentId", "string"), bodyReq("content", "string")},
		Description: "Updates a comment related to a note."},
	{Tool: "notes_delete_comment", Method: "DELETE", Path: "/v1/notes/{id}/comments/{commentId}", AuthRequired: true,
		Params:      []Param{pathParam("id", "integer"), pathParam("commentId", "string")},
		Description: "Removes a comment related to a note."},
	{Tool: "note_fields_get_all", Method: "GET", Path: "/v1/noteFields", AuthRequired: true,
		Description: "Returns data about all note fields."},

	// --- Organizations ---
	{Tool: "organizations_get_all", Method: "GET", Path: "/v1/organizations", AuthRequired: true, Pagination: PageOffset,
		Params:      withPage(offsetPage(), query("user_id", "integer"), query("filter_id", "integer"), query("first_char", "string"), query("sort", "string")),
		Description: "Returns all organizations."},
	{Tool: "organizations_get_details", Method: "GET", Path: "/v1/organizations/{id}", AuthRequired: true,
		Params:      []Param{pathParam("id", "integer")},
		Description: "Returns the details of an organization."},
	{Tool: "organizations_add", Method: "POST", Path: "/v1/organizations", AuthRequired: true, Body: BodyObject,
		Params:      []Param{bodyReq("name", "string"), body("owner_id", "integer"), body("visible_to", "string"), body("add_time", "string")},
		Description: "Adds a new organization."},
	{Tool: "organizations_update", Method: "PUT", Path: "/v1/organizations/{id}", AuthRequired: true, Body: BodyObject,
		Params:      []Param{pathParam("id", "integer"), body("name", "string"), body("owner_id", "integer"), body("visible_to", "string")},
		Description: "Updates the properties of an organization."},
	{Tool: "organizations_delete", Method: "DELETE", Path: "/v1/organizations/{id}", AuthRequired: true,
		Params:      []Param{pathParam("id", "integer")},
		Description: "Marks an organization as deleted."},
	{Tool: "organizations_delete_bulk", Method: "DELETE", Path: "/v1/organizations", AuthRequired: true,
		Params:      []Param{queryReq("ids", "array")},
		Description: "Marks multiple organizations as deleted by comma-separated IDs."},
	{Tool: "organizations_merge", Method: "PUT", Path: "/v1/organizations/{id}/merge", AuthRequired: true, Body: BodyObject,
		Params:      []Param{pathParam("id", "integer"), bodyReq("merge_with_id", "integer")},
		Description: "Merges an organization with another organization."},
	{Tool: "organizations_search", Method: "GET", Path: "/v1/organizations/search", AuthRequired: true, Pagination: PageOffset,
		Params:      withPage(offsetPage(), queryReq("term", "string"), query("fields", "string"), query("exact_match", "boolean")),
		Description: "Searches all organizations by name, address, notes or custom fields."},
	{Tool: "organizations_get_collection", Method: "GET", Path: "/v1/organizations/collection", AuthRequired: true, Pagination: PageCursor,
		Params:      withPage(cursorPage(), query("since", "string"), query("until", "string"), query("owner_id", "integer"), query("first_char", "string")),
		Description: "Returns all organizations, cursor-paginated."},
	{Tool: "organizations_list_activities", Method: "GET", Path: "/v1/organizations/{id}/activities", AuthRequired: true, Pagination: PageOffset,
		Params:      withPage(offsetPage(), pathParam("id", "integer"), query("done", "integer"), query("exclude", "string")),
		Description: "Lists activities associated with an organization."},
	{Tool: "organizations_list_deals", Method: "GET", Path: "/v1/organizations/{id}/deals", AuthRequired: true, Pagination: PageOffset,
		Params:      withPage(offsetPage(), pathParam("id", "integer"), query("status", "string"), query("sort", "string"), query("only_primary_association", "integer")),
		Description: "Lists deals associated with an organization."},
	{Tool: "organizations_list_files", Method: "GET", Path: "/v1/organizations/{id}/files", AuthRequired: true, Pagination: PageOffset,
		Params:      withPage(offsetPage(), pathParam("id", "integer"), query("sort", "string")),
		Description: "Lists files associated with an organization."},
	{Tool: "organizations_list_updates", Method: "GET", Path: "/v1/organizations/{id}/flow", AuthRequired: true, Pagination: PageOffset,
		Params:      withPage(offsetPage(), pathParam("id", "integer"), query("all_changes", "string"), query("items", "string")),
		Description: "Lists updates about an organization."},
	{Tool: "organizations_list_followers", Method: "GET", Path: "/v1/organizations/{id}/followers", AuthRequired: true,
		Params:      []Param{pathParam("id", "integer")},
		Description: "Lists the followers of an organization."},
	{Tool: "organizations_add_follower", Method: "POST", Path: "/v1/organizations/{id}/followers", AuthRequired: true, Body: BodyObject,
		Params:      []Param{pathParam("id", "integer"), bodyReq("user_id", "integer")},
		Description: "Adds a follower to an organization."},
	{Tool: "organizations_delete_follower", Method: "DELETE", Path: "/v1/organizations/{id}/followers/{follower_id}", AuthRequired: true,
		Params:      []Param{pathParam("id", "integer"), pathParam("follower_id", "integer")},
		Description: "Deletes a follower from an organization."},
	{Tool: "organizations_list_mail_messages", Method: "GET", Path: "/v1/organizations/{id}/mailMessages", AuthRequired: true, Pagination: PageOffset,
		Params:      withPage(offsetPage(), pathParam("id", "integer")),
		Description: "Lists mail messages associated with an organization."},
	{Tool: "organizations_list_permitted_users", Method: "GET", Path: "/v1/organizations/{id}/permittedUsers", AuthRequired: true,
		Params:      []Param{pathParam("id", "integer")},
		Description: "Lists users permitted to access an organization."},
	{Tool: "organizations_list_persons", Method: "GET", Path: "/v1/organizations/{id}/persons", AuthRequired: true, Pagination: PageOffset,
		Params:      withPage(offsetPage(), pathParam("id", "integer")),
		Description: "Lists persons associated with an organization."},

	// --- Organization fields and relationships ---
	{Tool: "organization_fields_get_all", Method: "GET", Path: "/v1/organizationFields", AuthRequired: true, Pagination: PageOffset,
		Params:      offsetPage(),
		Description: "Returns data about all organization fields."},
	{Tool: "organization_fields_get_details", Method: "GET", Path: "/v1/organizationFields/{id}", AuthRequired: true,
		Params:      []Param{pathParam("id", "integer")},
		Description: "Returns data about a specific organization field."},
	{Tool: "organization_fields_add", Method: "POST", Path: "/v1/organizationFields", AuthRequired: true, Body: BodyObject,
		Params:      []Param{bodyReq("name", "string"), bodyReq("field_type", "string"), body("options", "array"), body("add_visible_flag", "boolean")},
		Description: "Adds a new organization field."},
	{Tool: "organization_fields_update", Method: "PUT", Path: "/v1/organizationFields/{id}", AuthRequired: true, Body: BodyObject,
		Params:      []Param{pathParam("id", "integer"), body("name", "string"), body("options", "array"), body("add_visible_flag", "boolean")},
		Description: "Updates an organization field."},
	{Tool: "organization_fields_delete", Method: "DELETE", Path: "/v1/organizationFields/{id}", AuthRequired: true,
		Params:      []Param{pathParam("id", "integer")},
		Description: "Marks an organization field as deleted."},
	{Tool: "organization_fields_delete_bulk", Method: "DELETE", Path: "/v1/organizationFields", AuthRequired: true,
		Params:      []Param{queryReq("ids", "array")},
		Description: "Marks multiple organization fields as deleted in bulk."},
	{Tool: "organization_relationships_get_all", Method: "GET", Path: "/v1/organizationRelationships", AuthRequired: true,
		Params:      []Param{queryReq("org_id", "integer")},
		Description: "Gets all of the relationships for a supplied organization."},
	{Tool: "organization_relationships_get_details", Method: "GET", Path: "/v1/organizationRelationships/{id}", AuthRequired: true,
		Params:      []Param{pathParam("id", "integer"), query("org_id", "integer")},
		Description: "Finds and returns an organization relationship."},
	{Tool: "organization_relationships_add", Method: "POST", Path: "/v1/organizationRelationships", AuthRequired: true, Body: BodyObject,
		Params:      []Param{bodyReq("type", "string"), bodyReq("rel_owner_org_id", "integer"), bodyReq("rel_linked_org_id", "integer"), body("org_id", "integer")},
		Description: "Creates and returns an organization relationship."},
	{Tool: "organization_relationships_update", Method: "PUT", Path: "/v1/organizationRelationships/{id}", AuthRequired: true, Body: BodyObject,
		Params:      []Param{pathParam("id", "integer"), body("type", "string"), body("rel_owner_org_id", "integer"), body("rel_linked_org_id", "integer"), body("org_id", "integer")},
		Description: "Updates and returns an organization relationship."},
	{Tool: "organization_relationships_delete", Method: "DELETE", Path: "/v1/organizationRelationships/{id}", AuthRequired: true,
		Params:      []Param{pathParam("id", "integer")},
		Description: "Deletes an organization relationship."},

	// --- Permission sets ---
	{Tool: "permission_sets_get_all", Method: "GET", Path: "/v1/permissionSets", AuthRequired: true,
		Params:      []Param{query("app", "string")},
		Description: "Returns data about all permission sets."},
	{Tool: "permission_sets_get_details", Method: "GET", Path: "/v1/permissionSets/{id}", AuthRequired: true,
		Params:      []Param{pathParam("id", "string")},
		Description: "Returns data about a specific permission set."},
	{Tool: "permission_sets_list_assignments", Method: "GET", Path: "/v1/permissionSets/{id}/assignments", AuthRequired: true, Pagination: PageOffset,
		Params:      withPage(offsetPage(), pathParam("id", "string")),
		Description: "Returns the list of assignments for a permission set."},

	// --- Persons ---
	{Tool: "persons_get_all", Method: "GET", Path: "/v1/persons", AuthRequired: true, Pagination: PageOffset,
		Params:      withPage(offsetPage(), query("user_id", "integer"), query("filter_id", "integer"), query("first_char", "string"), query("sort", "string")),
		Description: "Returns all persons."},
	{Tool: "persons_get_details", Method: "GET", Path: "/v1/persons/{id}", AuthRequired: true,
		Params:      []Param{pathParam("id", "integer")},
		Description: "Returns the details of a person."},
	{Tool: "persons_add", Method: "POST", Path: "/v1/persons", AuthRequired: true, Body: BodyObject,
		Params:      []Param{bodyReq("name", "string"), body("owner_id", "integer"), body("org_id", "integer"), body("email", "array"), body("phone", "array"), body("visible_to", "string"), body("marketing_status", "string"), body("add_time", "string")},
		Description: "Adds a new person."},
	{Tool: "persons_update", Method: "PUT", Path: "/v1/persons/{id}", AuthRequired: true, Body: BodyObject,
		Params:      []Param{pathParam("id", "integer"), body("name", "string"), body("owner_id", "integer"), body("org_id", "integer"), body("email", "array"), body("phone", "array"), body("visible_to", "string"), body("marketing_status", "string")},
		Description: "Updates the properties of a person."},
	{Tool: "persons_delete", Method: "DELETE", Path: "/v1/persons/{id}", AuthRequired: true,
		Params:      []Param{pathParam("id", "integer")},
		Description: "Marks a person as deleted."},
	{Tool: "persons_delete_bulk", Method: "DELETE", Path: "/v1/persons", AuthRequired: true,
		Params:      []Param{queryReq("ids", "array")},
		Description: "Marks multiple persons as deleted by comma-separated IDs."},
	{Tool: "persons_merge", Method: "PUT", Path: "/v1/persons/{id}/merge", AuthRequired: true, Body: BodyObject,
		Params:      []Param{pathParam("id", "integer"), bodyReq("merge_with_id", "integer")},
		Description: "Merges a person with another person."},
	{Tool: "persons_search", Method: "GET", Path: "/v1/persons/search", AuthRequired: true, Pagination: PageOffset,
		Params:      withPage(offsetPage(), queryReq("term", "string"), query("fields", "string"), query("exact_match", "boolean"), query("organization_id", "integer"), query("include_fields", "string")),
		Description: "Searches all persons by name, email, phone, notes or custom fields."},
	{Tool: "persons_get_collection", Method: "GET", Path: "/v1/persons/collection", AuthRequired: true, Pagination: PageCursor,
		Params:      withPage(cursorPage(), query("since", "string"), query("until", "string"), query("owner_id", "integer"), query("first_char", "string")),
		Description: "Returns all persons, cursor-paginated."},
	{Tool: "persons_list_activities", Method: "GET", Path: "/v1/persons/{id}/activities", AuthRequired: true, Pagination: PageOffset,
		Params:      withPage(offsetPage(), pathParam("id", "integer"), query("done", "integer"), query("exclude", "string")),
		Description: "Lists activities associated with a person."},
	{Tool: "persons_list_deals", Method: "GET", Path: "/v1/persons/{id}/deals", AuthRequired: true, Pagination: PageOffset,
		Params:      withPage(offsetPage(), pathParam("id", "integer"), query("status", "string"), query("sort", "string")),
		Description: "Lists deals associated with a person."},
	{Tool: "persons_list_files", Method: "GET", Path: "/v1/persons/{id}/files", AuthRequired: true, Pagination: PageOffset,
		Params:      withPage(offsetPage(), pathParam("id", "integer"), query("sort", "string")),
		Description: "Lists files associated with a person."},
	{Tool: "persons_list_updates", Method: "GET", Path: "/v1/persons/{id}/flow", AuthRequired: true, Pagination: PageOffset,
		Params:      withPage(offsetPage(), pathParam("id", "integer"), query("all_changes", "string"), query("items", "string")),
		Description: "Lists updates about a person."},
	{Tool: "persons_list_followers", Method: "GET", Path: "/v1/persons/{id}/followers", AuthRequired: true,
		Params:      []Param{pathParam("id", "integer")},
		Description: "Lists the followers of a person."},
	{Tool: "persons_add_follower", Method: "POST", Path: "/v1/persons/{id}/followers", AuthRequired: true, Body: BodyObject,
		Params:      []Param{pathParam("id", "integer"), bodyReq("user_id", "integer")},
		Description: "Adds a follower to a person."},
	{Tool: "persons_delete_follower", Method: "DELETE", Path: "/v1/persons/{id}/followers/{follower_id}", AuthRequired: true,
		Params:      []Param{pathParam("id", "integer"), pathParam("follower_id", "integer")},
		Description: "Deletes a follower from a person."},
	{Tool: "persons_list_mail_messages", Method: "GET", Path: "/v1/persons/{id}/mailMessages", AuthRequired: true, Pagination: PageOffset,
		Params:      withPage(offsetPage(), pathParam("id", "integer")),
		Description: "Lists mail messages associated with a person."},
	{Tool: "persons_list_permitted_users", Method: "GET", Path: "/v1/persons/{id}/permittedUsers", AuthRequired: true,
		Params:      []Param{pathParam("id", "integer")},
		Description: "Lists users permitted to access a person."},
	{Tool: "persons_list_products", Method: "GET", Path: "/v1/persons/{id}/products", AuthRequired: true, Pagination: PageOffset,
		Params:      withPage(offsetPage(), pathParam("id", "integer")),
		Description: "Lists products associated with a person."},
	{Tool: "persons_add_picture", Method: "POST", Path: "/v1/persons/{id}/picture", AuthRequired: true, Body: BodyMultipart,
		Params:      []Param{pathParam("id", "integer"), bodyReq("file", "file"), body("crop_x", "integer"), body("crop_y", "integer"), body("crop_width", "integer"), body("crop_height", "integer")},
		Description: "Adds a picture to a person."},
	{Tool: "persons_delete_picture", Method: "DELETE", Path: "/v1/persons/{id}/picture", AuthRequired: true,
		Params:      []Param{pathParam("id", "integer")},
		Description: "Deletes the picture of a person."},

	// --- Person fields ---
	{Tool: "person_fields_get_all", Method: "GET", Path: "/v1/personFields", AuthRequired: true, Pagination: PageOffset,
		Params:      offsetPage(),
		Description: "Returns data about all person fields."},
	{Tool: "person_fields_get_details", Method: "GET", Path: "/v1/personFields/{id}", AuthRequired: true,
		Params:      []Param{pathParam("id", "integer")},
		Description: "Returns data about a specific person field."},
	{Tool: "person_fields_add", Method: "POST", Path: "/v1/personFields", AuthRequired: true, Body: BodyObject,
		Params:      []Param{bodyReq("name", "string"), bodyReq("field_type", "string"), body("options", "array"), body("add_visible_flag", "boolean")},
		Description: "Adds a new person field."},
	{Tool: "person_fields_update", Method: "PUT", Path: "/v1/personFields/{id}", AuthRequired: true, Body: BodyObject,
		Params:      []Param{pathParam("id", "integer"), body("name", "string"), body("options", "array"), body("add_visible_flag", "boolean")},
		Description: "Updates a person field."},
	{Tool: "person_fields_delete", Method: "DELETE", Path: "/v1/personFields/{id}", AuthRequired: true,
		Params:      []Param{pathParam("id", "integer")},
		Description: "Marks a person field as deleted."},
	{Tool: "person_fields_delete_bulk", Method: "DELETE", Path: "/v1/personFields", AuthRequired: true,
		Params:      []Param{queryReq("ids", "array")},
		Description: "Marks multiple person fields as deleted in bulk."},

	// --- Pipelines ---
	{Tool: "pipelines_get_all", Method: "GET", Path: "/v1/pipelines", AuthRequired: true,
		Description: "Returns data about all pipelines."},
	{Tool: "pipelines_get_details", Method: "GET", Path: "/v1/pipelines/{id}", AuthRequired: true,
		Params:      []Param{pathParam("id", "integer"), query("totals_convert_currency", "string")},
		Description: "Returns data about a specific pipeline."},
	{Tool: "pipelines_add", Method: "POST", Path: "/v1/pipelines", AuthRequired: true, Body: BodyObject,
		Params:      []Param{bodyReq("name", "string"), body("deal_probability", "integer"), body("order_nr", "integer"), body("active", "integer")},
		Description: "Adds a new pipeline."},
	{Tool: "pipelines_update", Method: "PUT", Path: "/v1/pipelines/{id}", AuthRequired: true, Body: BodyObject,
		Params:      []Param{pathParam("id", "integer"), body("name", "string"), body("deal_probability", "integer"), body("order_nr", "integer"), body("active", "integer")},
		Description: "Updates the properties of a pipeline."},
	{Tool: "pipelines_delete", Method: "DELETE", Path: "/v1/pipelines/{id}", AuthRequired: true,
		Params:      []Param{pathParam("id", "integer")},
		Description: "Marks a pipeline as deleted."},
	{Tool: "pipelines_list_deals", Method: "GET", Path: "/v1/pipelines/{id}/deals", AuthRequired: true, Pagination: PageOffset,
		Params:      withPage(offsetPage(), pathParam("id", "integer"), query("filter_id", "integer"), query("user_id", "integer"), query("everyone", "integer"), query("stage_id", "integer"), query("get_summary", "integer")),
		Description: "Lists deals in a specific pipeline across all its stages."},
	{Tool: "pipelines_get_conversion_statistics", Method: "GET", Path: "/v1/pipelines/{id}/conversion_statistics", AuthRequired: true,
		Params:      []Param{pathParam("id", "integer"), queryReq("start_date", "string"), queryReq("end_date", "string"), query("user_id", "integer")},
		Description: "Returns deal-to-deal conversion rates for a pipeline."},
	{Tool: "pipelines_get_movement_statistics", Method: "GET", Path: "/v1/pipelines/{id}/movement_statistics", AuthRequired: true,
		Params:      []Param{pathParam("id", "integer"), queryReq("start_date", "string"), queryReq("end_date", "string"), query("user_id", "integer")},
		Description: "Returns statistics for deals moved into and out of a pipeline."},

	// --- Products ---
	{Tool: "products_get_all", Method: "GET", Path: "/v1/products", AuthRequired: true, Pagination: PageOffset,
		Params:      withPage(offsetPage(), query("user_id", "integer"), query("filter_id", "integer"), query("ids", "array"), query("first_char", "string"), query("get_summary", "boolean")),
		Description: "Returns data about all products."},
	{Tool: "products_get_details", Method: "GET", Path: "/v1/products/{id}", AuthRequired: true,
		Params:      []Param{pathParam("id", "integer")},
		Description: "Returns data about a specific product."},
	{Tool: "products_add", Method: "POST", Path: "/v1/products", AuthRequired: true, Body: BodyObject,
		Params:      []Param{bodyReq("name", "string"), body("code", "string"), body("unit", "string"), body("tax", "number"), body("active_flag", "boolean"), body("selectable", "boolean"), body("visible_to", "string"), body("owner_id", "integer"), body("prices", "array")},
		Description: "Adds a new product."},
	{Tool: "products_update", Method: "PUT", Path: "/v1/products/{id}", AuthRequired: true, Body: BodyObject,
		Params:      []Param{pathParam("id", "integer"), body("name", "string"), body("code", "string"), body("unit", "string"), body("tax", "number"), body("active_flag", "boolean"), body("selectable", "boolean"), body("visible_to", "string"), body("owner_id", "integer"), body("prices", "array")},
		Description: "Updates product data."},
	{Tool: "products_delete", Method: "DELETE", Path: "/v1/products/{id}", AuthRequired: true,
		Params:      []Param{pathParam("id", "integer")},
		Description: "Marks a product as deleted."},
	{Tool: "products_search", Method: "GET", Path: "/v1/products/search", AuthRequired: true, Pagination: PageOffset,
		Params:      withPage(offsetPage(), queryReq("term", "string"), query("fields", "string"), query("exact_match", "boolean"), query("include_fields", "string")),
		Description: "Searches all products by name, code or custom fields."},
	{Tool: "products_list_deals", Method: "GET", Path: "/v1/products/{id}/deals", AuthRequired: true, Pagination: PageOffset,
		Params:      withPage(offsetPage(), pathParam("id", "integer"), query("status", "string")),
		Description: "Returns data about deals that have a product attached."},
	{Tool: "products_list_files", Method: "GET", Path: "/v1/products/{id}/files", AuthRequired: true, Pagination: PageOffset,
		Params:      withPage(offsetPage(), pathParam("id", "integer"), query("sort", "string")),
		Description: "Lists files associated with a product."},
	{Tool: "products_list_followers", Method: "GET", Path: "/v1/products/{id}/followers", AuthRequired: true,
		Params:      []Param{pathParam("id", "integer")},
		Description: "Lists the followers of a product."},
	{Tool: "products_add_follower", Method: "POST", Path: "/v1/products/{id}/followers", AuthRequired: true, Body: BodyObject,
		Params:      []Param{pathParam("id", "integer"), bodyReq("user_id", "integer")},
		Description: "Adds a follower to a product."},
	{Tool: "products_delete_follower", Method: "DELETE", Path: "/v1/products/{id}/followers/{follower_id}", AuthRequired: true,
		Params:      []Param{pathParam("id", "integer"), pathParam("follower_id", "integer")},
		Description: "Deletes a follower from a product."},
	{Tool: "products_list_permitted_users", Method: "GET", Path: "/v1/products/{id}/permittedUsers", AuthRequired: true,
		Params:      []Param{pathParam("id", "integer")},
		Description: "Lists users permitted to access a product."},

	// --- Product fields ---
	{Tool: "product_fields_get_all", Method: "GET", Path: "/v1/productFields", AuthRequired: true, Pagination: PageOffset,
		Params:      offsetPage(),
		Description: "Returns data about all product fields."},
	{Tool: "product_fields_get_details", Method: "GET", Path: "/v1/productFields/{id}", AuthRequired: true,
		Params:      []Param{pathParam("id", "integer")},
		Description: "Returns data about a specific product field."},
	{Tool: "product_fields_add", Method: "POST", Path: "/v1/productFields", AuthRequired: true, Body: BodyObject,
		Params:      []Param{bodyReq("name", "string"), bodyReq("field_type", "string"), body("options", "array")},
		Description: "Adds a new product field."},
	{Tool: "product_fields_update", Method: "PUT", Path: "/v1/productFields/{id}", AuthRequired: true, Body: BodyObject,
		Params:      []Param{pathParam("id", "integer"), body("name", "string"), body("options", "array")},
		Description: "Updates a product field."},
	{Tool: "product_fields_delete", Method: "DELETE", Path: "/v1/productFields/{id}", AuthRequired: true,
		Params:      []Param{pathParam("id", "integer")},
		Description: "Marks a product field as deleted."},
	{Tool: "product_fields_delete_bulk", Method: "DELETE", Path: "/v1/productFields", AuthRequired: true,
		Params:      []Param{queryReq("ids", "array")},
		Description: "Marks multiple product fields as deleted in bulk."},

	// --- Recents ---
	{Tool: "recents_get", Method: "GET", Path: "/v1/recents", AuthRequired: true, Pagination: PageOffset,
		Params:      withPage(offsetPage(), queryReq("since_timestamp", "string"), query("items", "string")),
		Description: "Returns data about all recent changes occurred after the given timestamp."},

	// --- Roles ---
	{Tool: "roles_get_all", Method: "GET", Path: "/v1/roles", AuthRequired: true, Pagination: PageOffset,
		Params:      offsetPage(),
		Description: "Returns all the roles within the company."},
	{Tool: "roles_get_details", Method: "GET", Path: "/v1/roles/{id}", AuthRequired: true,
		Params:      []Param{pathParam("id", "integer")},
		Description: "Returns the details of a specific role."},
	{Tool: "roles_add", Method: "POST", Path: "/v1/roles", AuthRequired: true, Body: BodyObject,
		Params:      []Param{bodyReq("name", "string"), body("parent_role_id", "integer")},
		Description: "Adds a new role."},
	{Tool: "roles_update", Method: "PUT", Path: "/v1/roles/{id}", AuthRequired: true, Body: BodyObject,
		Params:      []Param{pathParam("id", "integer"), body("name", "string"), body("parent_role_id", "integer")},
		Description: "Updates the parent role and/or the name of a specific role."},
	{Tool: "roles_delete", Method: "DELETE", Path: "/v1/roles/{id}", AuthRequired: true,
		Params:      []Param{pathParam("id", "integer")},
		Description: "Marks a role as deleted."},
	{Tool: "roles_list_assignments", Method: "GET", Path: "/v1/roles/{id}/assignments", AuthRequired: true, Pagination: PageOffset,
		Params:      withPage(offsetPage(), pathParam("id", "integer")),
		Description: "Returns all users assigned to a role."},
	{Tool: "roles_add_assignment", Method: "POST", Path: "/v1/roles/{id}/assignments", AuthRequired: true, Body: BodyObject,
		Params:      []Param{pathParam("id", "integer"), bodyReq("user_id", "integer")},
		Description: "Assigns a user to a role."},
	{Tool: "roles_delete_assignment", Method: "DELETE", Path: "/v1/roles/{id}/assignments", AuthRequired: true, Body: BodyObject,
		Params:      []Param{pathParam("id", "integer"), bodyReq("user_id", "integer")},
		Description: "Removes the assigned user from a role and adds to the default role."},
	{Tool: "roles_list_settings", Method: "GET", Path: "/v1/roles/{id}/settings", AuthRequired: true,
		Params:      []Param{pathParam("id", "integer")},
		Description: "Returns the visibility settings of a specific role."},
	{Tool: "roles_add_or_update_setting", Method: "POST", Path: "/v1/roles/{id}/settings", AuthRequired: true, Body: BodyObject,
		Params:      []Param{pathParam("id", "integer"), bodyReq("setting_key", "string"), bodyReq("value", "integer")},
		Description: "Adds or updates the visibility setting of a role."},

	// --- Stages ---
	{Tool: "stages_get_all", Method: "GET", Path: "/v1/stages", AuthRequired: true,
		Params:      []Param{query("pipeline_id", "integer")},
		Description: "Returns data about all stages."},
	{Tool: "stages_get_details", Method: "GET", Path: "/v1/stages/{id}", AuthRequired: true,
		Params:      []Param{pathParam("id", "integer"), query("everyone", "integer")},
		Description: "Returns data about a specific stage."},
	{Tool: "stages_add", Method: "POST", Path: "/v1/stages", AuthRequired: true, Body: BodyObject,
		Params:      []Param{bodyReq("name", "string"), bodyReq("pipeline_id", "integer"), body("deal_probability", "integer"), body("rotten_flag", "boolean"), body("rotten_days", "integer")},
		Description: "Adds a new stage."},
	{Tool: "stages_update", Method: "PUT", Path: "/v1/stages/{id}", AuthRequired: true, Body: BodyObject,
		Params:      []Param{pathParam("id", "integer"), body("name", "string"), body("pipeline_id", "integer"), body("deal_probability", "integer"), body("rotten_flag", "boolean"), body("rotten_days", "integer"), body("order_nr", "integer")},
		Description: "Updates the properties of a stage."},
	{Tool: "stages_delete", Method: "DELETE", Path: "/v1/stages/{id}", AuthRequired: true,
		Params:      []Param{pathParam("id", "integer")},
		Description: "Marks a stage as deleted."},
	{Tool: "stages_delete_bulk", Method: "DELETE", Path: "/v1/stages", AuthRequired: true,
		Params:      []Param{queryReq("ids", "array")},
		Description: "Marks multiple stages as deleted by comma-separated IDs."},
	{Tool: "stages_list_deals", Method: "GET", Path: "/v1/stages/{id}/deals", AuthRequired: true, Pagination: PageOffset,
		Params:      withPage(offsetPage(), pathParam("id", "integer"), query("filter_id", "integer"), query("user_id", "integer"), query("everyone", "integer")),
		Description: "Lists deals in a specific stage."},

	// --- Subscriptions ---
	{Tool: "subscriptions_get_details", Method: "GET", Path: "/v1/subscriptions/{id}", AuthRequired: true,
		Params:      []Param{pathParam("id", "integer")},
		Description: "Returns details of an installment or a recurring subscription."},
	{Tool: "subscriptions_find_by_deal", Method: "GET", Path: "/v1/subscriptions/find/{dealId}", AuthRequired: true,
		Params:      []Param{pathParam("dealId", "integer")},
		Description: "Returns the details of the subscription attached to a deal."},
	{Tool: "subscriptions_get_payments", Method: "GET", Path: "/v1/subscriptions/{id}/payments", AuthRequired: true,
		Params:      []Param{pathParam("id", "integer")},
		Description: "Returns all payments of an installment or recurring subscription."},
	{Tool: "subscriptions_add_recurring", Method: "POST", Path: "/v1/subscriptions/recurring", AuthRequired: true, Body: BodyObject,
		Params:      []Param{bodyReq("deal_id", "integer"), bodyReq("currency", "string"), bodyReq("cadence_type", "string"), bodyReq("cycle_amount", "integer"), bodyReq("start_date", "string"), body("cycles_count", "integer"), body("infinite", "boolean"), body("payments", "array"), body("update_deal_value", "boolean"), body("description", "string")},
		Description: "Adds a new recurring subscription."},
	{Tool: "subscriptions_add_installment", Method: "POST", Path: "/v1/subscriptions/installment", AuthRequired: true, Body: BodyObject,
		Params:      []Param{bodyReq("deal_id", "integer"), bodyReq("currency", "string"), bodyReq("payments", "array"), body("update_deal_value", "boolean")},
		Description: "Adds a new installment subscription."},
	{Tool: "subscriptions_update_recurring", Method: "PUT", Path: "/v1/subscriptions/recurring/{id}", AuthRequired: true, Body: BodyObject,
		Params:      []Param{pathParam("id", "integer"), body("cycle_amount", "integer"), body("payments", "array"), body("update_deal_value", "boolean"), body("effective_date", "string")},
		Description: "Updates a recurring subscription."},
	{Tool: "subscriptions_update_installment", Method: "PUT", Path: "/v1/subscriptions/installment/{id}", AuthRequired: true, Body: BodyObject,
		Params:      []Param{pathParam("id", "integer"), bodyReq("payments", "array"), body("update_deal_value", "boolean")},
		Description: "Updates an installment subscription."},
	{Tool: "subscriptions_cancel_recurring", Method: "PUT", Path: "/v1/subscriptions/recurring/{id}/cancel", AuthRequired: true, Body: BodyObject,
		Params:      []Param{pathParam("id", "integer"), body("end_date", "string")},
		Description: "Cancels a recurring subscription."},
	{Tool: "subscriptions_delete", Method: "DELETE", Path: "/v1/subscriptions/{id}", AuthRequired: true,
		Params:      []Param{pathParam("id", "integer")},
		Description: "Marks an installment or a recurring subscription as deleted."},

	// --- Users ---
	{Tool: "users_get_all", Method: "GET", Path: "/v1/users", AuthRequired: true,
		Description: "Returns data about all users within the company."},
	{Tool: "users_get_current", Method: "GET", Path: "/v1/users/me", AuthRequired: true,
		Description: "Returns data about the authorized user within the company."},
	{Tool: "users_get_details", Method: "GET", Path: "/v1/users/{id}", AuthRequired: true,
		Params:      []Param{pathParam("id", "integer")},
		Description: "Returns data about a specific user within the company."},
	{Tool: "users_find_by_name", Method: "GET", Path: "/v1/users/find", AuthRequired: true,
		Params:      []Param{queryReq("term", "string"), query("search_by_email", "integer")},
		Description: "Finds users by their name."},
	{Tool: "users_add", Method: "POST", Path: "/v1/users", AuthRequired: true, Body: BodyObject,
		Params:      []Param{bodyReq("email", "string"), body("access", "array"), body("active_flag", "boolean")},
		Description: "Adds a new user to the company."},
	{Tool: "users_update", Method: "PUT", Path: "/v1/users/{id}", AuthRequired: true, Body: BodyObject,
		Params:      []Param{pathParam("id", "integer"), bodyReq("active_flag", "boolean")},
		Description: "Updates the properties of a user."},
	{Tool: "users_list_followers", Method: "GET", Path: "/v1/users/{id}/followers", AuthRequired: true,
		Params:      []Param{pathParam("id", "integer")},
		Description: "Lists the followers of a specific user."},
	{Tool: "users_list_permissions", Method: "GET", Path: "/v1/users/{id}/permissions", AuthRequired: true,
		Params:      []Param{pathParam("id", "integer")},
		Description: "Lists aggregated permissions over all assigned permission sets for a user."},
	{Tool: "users_list_role_assignments", Method: "GET", Path: "/v1/users/{id}/roleAssignments", AuthRequired: true, Pagination: PageOffset,
		Params:      withPage(offsetPage(), pathParam("id", "integer")),
		Description: "Lists role assignments for a user."},
	{Tool: "users_list_role_settings", Method: "GET", Path: "/v1/users/{id}/roleSettings", AuthRequired: true,
		Params:      []Param{pathParam("id", "integer")},
		Description: "Lists the settings of user's assigned role."},
	{Tool: "user_connections_get_all", Method: "GET", Path: "/v1/userConnections", AuthRequired: true,
		Description: "Returns data about all connections for the authorized user."},
	{Tool: "user_settings_get_all", Method: "GET", Path: "/v1/userSettings", AuthRequired: true,
		Description: "Lists the settings of the authorized user."},

	// --- Webhooks ---
	{Tool: "webhooks_get_all", Method: "GET", Path: "/v1/webhooks", AuthRequired: true,
		Description: "Returns data about all webhooks of the company."},
	{Tool: "webhooks_add", Method: "POST", Path: "/v1/webhooks", AuthRequired: true, Body: BodyObject,
		Params:      []Param{bodyReq("subscription_url", "string"), bodyReq("event_action", "string"), bodyReq("event_object", "string"), body("user_id", "integer"), body("http_auth_user", "string"), body("http_auth_password", "string"), body("version", "string")},
		Description: "Creates a new webhook."},
	{Tool: "webhooks_delete", Method: "DELETE", Path: "/v1/webhooks/{id}", AuthRequired: true,
		Params:      []Param{pathParam("id", "integer")},
		Description: "Deletes an existing webhook."},
}
